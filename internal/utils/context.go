// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
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

// AdminCtxKey is the key used to store the authenticated admin principal
// in the context. Used together with GetAdminFromContext for type-safe
// retrieval from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminCtxKey, "admin")
var AdminCtxKey = contextKey("admin")

// GetAdminFromContext retrieves the authenticated admin principal from the
// context.
//
// Returns the principal name and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetAdminFromContext(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(string)
	return admin, ok
}
