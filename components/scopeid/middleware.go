package scopeid

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-markup/pkg/constraint"
)

// Middleware returns a handler wrapper that stores the scoped identifier in
// the request context. When neither the header nor the (optional) query
// parameter carries a value the context is left untouched, so downstream
// constraints observe an absent identifier rather than an empty one.
func Middleware(fns ...OptionFn) func(http.Handler) http.Handler {
	opts := NewOptions(fns...)
	return MiddlewareWithOptions(opts)
}

// MiddlewareWithOptions is Middleware over a pre-built Options value.
func MiddlewareWithOptions(opts Options) func(http.Handler) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := extractIdentifier(r, opts); ok {
				r = r.WithContext(constraint.WithIdentifier(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractIdentifier(r *http.Request, opts Options) (string, bool) {
	if values, ok := r.Header[http.CanonicalHeaderKey(opts.HeaderName)]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0]), true
	}
	if opts.AllowQuery {
		query := r.URL.Query()
		if query.Has(opts.QueryParam) {
			return strings.TrimSpace(query.Get(opts.QueryParam)), true
		}
	}
	return "", false
}
