package signupcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DefaultDomain is the email domain used for synthetic students.
const DefaultDomain = "mergington.edu"

// Validate checks the run parameters.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.BaseURL) == "":
		return fmt.Errorf("%w: base url is required", ErrInvalidConfig)
	case c.Students <= 0:
		return fmt.Errorf("%w: students must be positive, got %d", ErrInvalidConfig, c.Students)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Plan assigns each synthetic student to a target activity, round-robin
// over the sorted activity names. Every student gets a unique email.
func Plan(cfg *Config, catalog map[string]Activity) ([]Enrollment, error) {
	targets, err := targetActivities(cfg.Activities, catalog)
	if err != nil {
		return nil, err
	}

	domain := cfg.Domain
	if domain == "" {
		domain = DefaultDomain
	}

	plan := make([]Enrollment, 0, cfg.Students)
	for i := 0; i < cfg.Students; i++ {
		plan = append(plan, Enrollment{
			Activity: targets[i%len(targets)],
			Email:    "check-" + uuid.NewString() + "@" + domain,
		})
	}
	return plan, nil
}

func targetActivities(wanted []string, catalog map[string]Activity) ([]string, error) {
	if len(wanted) == 0 {
		names := make([]string, 0, len(catalog))
		for name := range catalog {
			names = append(names, name)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: registry has no activities", ErrVerification)
		}
		sort.Strings(names)
		return names, nil
	}

	for _, name := range wanted {
		if _, ok := catalog[name]; !ok {
			return nil, fmt.Errorf("%w: unknown activity %q", ErrInvalidConfig, name)
		}
	}
	return wanted, nil
}
