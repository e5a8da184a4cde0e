// Package reqid provides request ID generation and context propagation for
// outbound backend calls.
//
// Every request the REST client sends carries an X-Request-ID header. A
// caller that already owns an ID (say, one spanning a whole CLI invocation)
// stores it in the context and the client reuses it; otherwise a fresh one
// is generated per call.
//
//	ctx := reqid.WithValue(ctx, reqid.New())
//	err := client.Get("/products").Result(ctx, &page)
package reqid

import (
	"context"

	"github.com/google/uuid"
)

// ctxKey is the unexported key used to store the request ID in context.
type ctxKey struct{}

// Header is the HTTP header name used to propagate the request ID.
const Header = "X-Request-ID"

// New generates a random request ID.
func New() string {
	return uuid.NewString()
}

// WithValue stores id in ctx and returns the new context.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx extracts the request ID from ctx.
// Returns an empty string if none is present.
func FromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
