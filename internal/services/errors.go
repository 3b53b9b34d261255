package services

import "errors"

// The recoverable error taxonomy. Handlers convert each of these to a
// user-visible message on a re-rendered form; anything else is a server
// error.

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation, e.g. a username that is
// already registered.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError reports a failed credential check. The message distinguishes
// an unknown username from a wrong password.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ErrForbidden is returned when a user attempts to mutate a post they do
// not own.
var ErrForbidden = errors.New("forbidden")

// IsRecoverable reports whether err belongs to the recoverable taxonomy.
func IsRecoverable(err error) bool {
	var ve *ValidationError
	var ce *ConflictError
	var ae *AuthError
	return errors.As(err, &ve) || errors.As(err, &ce) || errors.As(err, &ae)
}
