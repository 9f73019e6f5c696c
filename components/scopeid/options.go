package scopeid

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-markup/pkg/constraint"
)

// GuardFunc may reject a request before constraint evaluation runs.
type GuardFunc func(r *http.Request) error

type Options struct {
	// HeaderName is the request header carrying the scoped identifier.
	HeaderName string
	// QueryParam is consulted when the header is absent and AllowQuery is set.
	QueryParam string
	AllowQuery bool
	// Resolver realizes constraint declarations during route registration.
	Resolver constraint.Resolver
	Guard    GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		HeaderName: "X-Scope-Id",
		QueryParam: "scope",
		Resolver:   constraint.ContextResolver(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.HeaderName) == "" {
		opts.HeaderName = "X-Scope-Id"
	}
	if strings.TrimSpace(opts.QueryParam) == "" {
		opts.QueryParam = "scope"
	}
	if opts.Resolver == nil {
		opts.Resolver = constraint.ContextResolver()
	}
	return opts
}

func WithHeaderName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HeaderName = name
	}
}

func WithQueryParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.QueryParam = name
	}
}

func WithAllowQuery(allow bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AllowQuery = allow
	}
}

func WithResolver(res constraint.Resolver) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Resolver = res
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
