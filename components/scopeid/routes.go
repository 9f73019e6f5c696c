package scopeid

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-markup/pkg/constraint"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Handle registers handler on mux behind the supplied constraint
// declarations. Each declaration is realized through the configured
// resolver once, at registration time; requests rejected by any constraint
// receive 404, the same observable outcome as a route that never matched.
func Handle(mux Mux, pattern string, handler http.Handler, declarations []constraint.RequestMatch, fns ...OptionFn) error {
	opts := NewOptions(fns...)
	return HandleWithOptions(mux, pattern, handler, declarations, opts)
}

// HandleWithOptions is Handle over a pre-built Options value.
func HandleWithOptions(mux Mux, pattern string, handler http.Handler, declarations []constraint.RequestMatch, opts Options) error {
	if mux == nil {
		return fmt.Errorf("scopeid: missing mux")
	}
	if handler == nil {
		return fmt.Errorf("scopeid: missing handler")
	}
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("scopeid: missing pattern")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	set := constraint.NewSet()
	for _, decl := range declarations {
		realized, err := decl.Constraint(opts.Resolver)
		if err != nil {
			return fmt.Errorf("scopeid: realize constraint for %s: %w", pattern, err)
		}
		set.Add(realized)
	}

	mux.Handle(pattern, guarded(handler, set, opts))
	return nil
}

// RegisterRoutes mounts handler under basePath, wiring the identifier
// middleware in front of constraint evaluation so header-carried scopes are
// visible to context-backed providers. It returns the full mount pattern.
func RegisterRoutes(mux Mux, basePath, routePath string, handler http.Handler, declarations []constraint.RequestMatch, fns ...OptionFn) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("scopeid: missing mux")
	}
	opts := NewOptions(fns...)
	pattern := mountPath(basePath, routePath)

	// Middleware must run before the constraint guard so context providers
	// observe the extracted identifier.
	outer := muxFunc(func(p string, h http.Handler) {
		mux.Handle(p, MiddlewareWithOptions(opts)(h))
	})
	if err := HandleWithOptions(outer, pattern, handler, declarations, opts); err != nil {
		return "", err
	}
	return pattern, nil
}

type muxFunc func(pattern string, handler http.Handler)

func (fn muxFunc) Handle(pattern string, handler http.Handler) {
	fn(pattern, handler)
}

func guarded(next http.Handler, set *constraint.Set, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
		}
		if !set.Accept(r) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
