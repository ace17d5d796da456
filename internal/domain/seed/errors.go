package seed

import "errors"

// Sentinel error kinds for seed loading.
var (
	ErrLoadSeed    = errors.New("load seed failed")
	ErrInvalidSeed = errors.New("invalid seed")
)
