package adapter

import "errors"

// Sentinel errors produced by mapHTTPError. Callers match them with
// [errors.Is] instead of inspecting HTTP status codes.
var (
	// ErrInvalidRequest covers 400 responses: the backend rejected the
	// request shape or content.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized covers 401 and 403 responses: missing, expired or
	// insufficient console credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound covers 404 responses for rows and stored files.
	ErrNotFound = errors.New("row not found")

	// ErrConflict covers 409 responses: the row already exists.
	ErrConflict = errors.New("conflict")

	// ErrServerUnavailable covers every 5xx response: the backend or a
	// proxy in front of it failed. Retrying later is the only remedy.
	ErrServerUnavailable = errors.New("server unavailable")
)
