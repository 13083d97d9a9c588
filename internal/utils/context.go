// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HMAC signing,
// HTTP response writing, JWT token generation and validation,
// and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-web-bootstrap/models"
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

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context. It is set by the authentication stage of the pipeline.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// RequestContextCtxKey is the key of the per-request [models.RequestContext].
var RequestContextCtxKey = contextKey("requestContext")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *models.RequestContext) context.Context {
	return context.WithValue(ctx, RequestContextCtxKey, rc)
}

// GetRequestContext retrieves the per-request bag stored by
// [WithRequestContext]. ok is false when the request did not pass
// the body decoding stage.
func GetRequestContext(ctx context.Context) (*models.RequestContext, bool) {
	rc, ok := ctx.Value(RequestContextCtxKey).(*models.RequestContext)
	return rc, ok && rc != nil
}
