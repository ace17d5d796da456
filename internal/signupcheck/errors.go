package signupcheck

import "errors"

// Error constants.
var (
	ErrInvalidConfig    = errors.New("invalid signup check config")
	ErrHealthCheck      = errors.New("service health check failed")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrVerification     = errors.New("registry verification failed")
)
