package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request carries empty or
	// unusable fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned when the console username or
	// password does not match the configured account.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenIsExpired is returned when a presented console token has
	// passed its expiration claim.
	ErrTokenIsExpired = errors.New("token is expired")
)
