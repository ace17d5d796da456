// Package repository defines the activity registry store and its errors.
package repository

import (
	"context"

	"github.com/okian/activities/internal/domain/model"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns a deep copy of every activity keyed by name.
	List(ctx context.Context) model.Catalog

	// Get returns a copy of a single activity.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the activity's participants and returns the
	// updated activity. Returns ErrActivityNotFound, ErrAlreadySignedUp or,
	// with capacity enforcement on, ErrActivityFull.
	Signup(ctx context.Context, name, email string) (model.Activity, error)

	// Unregister removes email from the activity's participants and returns
	// the updated activity. Returns ErrActivityNotFound or ErrNotSignedUp.
	Unregister(ctx context.Context, name, email string) (model.Activity, error)

	// Count returns the number of activities.
	Count(ctx context.Context) int

	// Names returns activity names in alphabetical order.
	Names(ctx context.Context) []string
}
