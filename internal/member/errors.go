package member

import "errors"

var (
	// ErrValidation signals a missing or empty required field.
	ErrValidation = errors.New("invalid argument")
	// ErrPhoneExists signals a duplicate phone number.
	ErrPhoneExists = errors.New("phone already registered")
	// ErrNotFound is returned when no record matches the phone.
	ErrNotFound = errors.New("member not found")
	// ErrNothingToUpdate signals an update request with no fields set.
	ErrNothingToUpdate = errors.New("nothing to update")
)
