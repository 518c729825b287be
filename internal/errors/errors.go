package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password is too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// IsValidation reports whether err is one of the registration input
// errors that should surface as a client error rather than a generic
// authentication failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmailAlreadyInUse) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrWeakPassword)
}
