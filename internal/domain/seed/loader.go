package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/xeipuuv/gojsonschema"

	"github.com/okian/activities/internal/domain/model"
)

// keyDelim separates nested koanf keys. Activity names are top-level keys and
// may contain dots, so the delimiter must be a character names cannot hold.
const keyDelim = "/"

// catalogSchema describes a seed document: activity name -> activity record.
const catalogSchema = `{
  "type": "object",
  "minProperties": 1,
  "propertyNames": {"minLength": 1, "pattern": "^[^/]+$"},
  "additionalProperties": {
    "type": "object",
    "required": ["description", "schedule", "max_participants"],
    "additionalProperties": false,
    "properties": {
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer", "minimum": 0},
      "participants": {
        "type": "array",
        "uniqueItems": true,
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(catalogSchema)

// Load reads a YAML or JSON seed file, validates it and returns the catalog.
func Load(_ context.Context, path string) (model.Catalog, error) {
	k := koanf.New(keyDelim)
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadSeed, path, err)
	}

	raw := k.Raw()
	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var decoded map[string]model.Activity
	if err := k.UnmarshalWithConf("", &decoded, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSeed, path, err)
	}
	return model.Catalog(decoded).Clone(), nil
}

// Validate checks a decoded seed document against the catalog schema.
func Validate(doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidSeed, strings.Join(msgs, "; "))
}
