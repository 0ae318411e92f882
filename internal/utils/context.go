// Package utils provides general-purpose helper utilities used across the
// backend and the portal: context keys, HTTP response writing, the shared
// resty client wrapper, JWT generation/validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key used to store the authenticated console account
// name in the context. Set by the auth middleware after token validation.
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the console account name from the
// context.
//
// Returns the name and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
