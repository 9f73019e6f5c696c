package scopeid

import (
	"net/http"

	"github.com/goliatone/go-markup/pkg/constraint"
)

// Component is a small, extraction-friendly wrapper around the identifier
// middleware, its configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Middleware returns the identifier-extraction middleware.
func (c *Component) Middleware() func(http.Handler) http.Handler {
	if c == nil {
		return Middleware()
	}
	return MiddlewareWithOptions(c.opts)
}

// Handle registers a constraint-gated handler on mux.
func (c *Component) Handle(mux Mux, pattern string, handler http.Handler, declarations ...constraint.RequestMatch) error {
	if c == nil {
		return Handle(mux, pattern, handler, declarations)
	}
	return HandleWithOptions(mux, pattern, handler, declarations, c.opts)
}

// RegisterRoutes mounts a middleware-wrapped, constraint-gated handler
// under basePath and returns the full mount pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath, routePath string, handler http.Handler, declarations ...constraint.RequestMatch) (string, error) {
	opts := c.Options()
	return RegisterRoutes(mux, basePath, routePath, handler, declarations, func(o *Options) { *o = opts })
}
