package constraint

import (
	"context"
	"net/http"
)

// Provider reports the scoped identifier for one inbound request. The value
// is fixed for the lifetime of the request and differs across concurrent
// requests. The boolean result distinguishes an absent identifier from a
// present-but-empty one.
type Provider interface {
	CurrentIdentifier(r *http.Request) (string, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(r *http.Request) (string, bool)

// CurrentIdentifier calls fn(r).
func (fn ProviderFunc) CurrentIdentifier(r *http.Request) (string, bool) {
	return fn(r)
}

type identifierKey struct{}

// WithIdentifier returns a context carrying the scoped identifier for the
// current request. Middleware is expected to call this once per request;
// the stored value is immutable afterwards.
func WithIdentifier(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, identifierKey{}, id)
}

// IdentifierFromContext returns the identifier stored by WithIdentifier.
func IdentifierFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(identifierKey{}).(string)
	return id, ok
}

// ContextProvider reads the identifier stashed in the request context.
type ContextProvider struct{}

// CurrentIdentifier implements Provider over the request context.
func (ContextProvider) CurrentIdentifier(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	return IdentifierFromContext(r.Context())
}
