package models

import "errors"

// Service error taxonomy. Handlers match these with errors.Is and map them
// to HTTP statuses; anything outside the taxonomy is reported as a generic
// internal error so store details never reach callers.
var (
	// ErrDuplicateCredential is returned when a registration collides with
	// an existing username or email.
	ErrDuplicateCredential = errors.New("username or email already registered")

	// ErrInvalidCredentials is returned for every login failure. Unknown
	// email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation is returned when an input field is blank or out of range.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a record does not exist or is outside the
	// caller's scope. The two cases are deliberately merged.
	ErrNotFound = errors.New("record not found")
)
