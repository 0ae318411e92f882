package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match with
// [errors.Is].
var (
	// ErrTableUnknown is returned when a request names a table outside the
	// registered set.
	ErrTableUnknown = errors.New("unknown table")

	// ErrRowNotFound is returned when a lookup, patch or delete targets an
	// id that does not exist in the table.
	ErrRowNotFound = errors.New("row not found")

	// ErrRowExists is returned when an INSERT collides with an existing id.
	ErrRowExists = errors.New("row already exists")

	// ErrRowMissingID is returned when a submitted row carries no usable
	// string "id" field.
	ErrRowMissingID = errors.New("row has no id")

	// ErrRowMalformed is returned when a submitted row or patch is not a
	// JSON object.
	ErrRowMalformed = errors.New("row is not a json object")
)

// File storage errors.
var (
	// ErrBucketInvalid is returned when a bucket or object name fails path
	// validation.
	ErrBucketInvalid = errors.New("invalid bucket or object name")

	// ErrFileNotFound is returned when a removal targets an object that is
	// not stored.
	ErrFileNotFound = errors.New("file not found")
)
