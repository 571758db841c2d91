package domain

import "errors"

// Sentinel errors cross the service boundary unchanged; the HTTP layer maps
// them to status codes. Anything else is treated as a persistence failure.
var (
	// ErrNotFound covers both a missing resource and one owned by another
	// user, so existence of other users' resources never leaks.
	ErrNotFound        = errors.New("not found")
	ErrDuplicateReview = errors.New("destination already reviewed by this user")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnknownEmail    = errors.New("email not registered")
	ErrBadCredential   = errors.New("incorrect password")
	ErrUnauthorized    = errors.New("authentication required")
)

// ValidationError carries the human-readable reason for a rejected input.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
