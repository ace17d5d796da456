package repository

import "errors"

// Sentinel kinds for registry errors. NotFound covers unknown activities;
// the remaining kinds are membership conflicts.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up")
	ErrNotSignedUp      = errors.New("not signed up")
	ErrActivityFull     = errors.New("activity is full")
)

// IsConflict reports whether err is one of the membership conflict kinds.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadySignedUp) ||
		errors.Is(err, ErrNotSignedUp) ||
		errors.Is(err, ErrActivityFull)
}
