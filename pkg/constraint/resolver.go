package constraint

import (
	"fmt"
	"sync"
)

// ProviderService is the well-known service key a Resolver must satisfy
// when realizing identifier constraints.
const ProviderService = "markup.identifier.provider"

// Resolver constructs collaborator services on demand. Implementations
// combine their own registrations with the caller-supplied extras; for
// ProviderService the single extra is the declared identifier string.
type Resolver interface {
	Resolve(service string, extras ...any) (any, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(service string, extras ...any) (any, error)

// Resolve calls fn.
func (fn ResolverFunc) Resolve(service string, extras ...any) (any, error) {
	return fn(service, extras...)
}

// Factory builds one service instance from caller-supplied extras.
type Factory func(extras ...any) (any, error)

// FactoryCache is a Resolver that memoizes one Factory per service key.
// Lookup factories are built at most once even under concurrent first use;
// the produced instances themselves are never cached. The zero value is
// ready to use.
type FactoryCache struct {
	lookup func(service string) (Factory, error)
	byKey  sync.Map // service -> *cacheEntry
}

type cacheEntry struct {
	once    sync.Once
	factory Factory
	err     error
}

// NewFactoryCache builds a cache over lookup, which maps a service key to
// its Factory. Lookup runs once per key.
func NewFactoryCache(lookup func(service string) (Factory, error)) *FactoryCache {
	return &FactoryCache{lookup: lookup}
}

// Register stores a factory for service, bypassing lookup for that key.
func (c *FactoryCache) Register(service string, factory Factory) {
	if c == nil || service == "" || factory == nil {
		return
	}
	entry := &cacheEntry{factory: factory}
	entry.once.Do(func() {})
	c.byKey.Store(service, entry)
}

// Resolve builds a service instance, memoizing the factory lookup per key.
func (c *FactoryCache) Resolve(service string, extras ...any) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("constraint: factory cache is nil")
	}
	if service == "" {
		return nil, fmt.Errorf("constraint: service key is required")
	}

	value, _ := c.byKey.LoadOrStore(service, &cacheEntry{})
	entry := value.(*cacheEntry)
	entry.once.Do(func() {
		if entry.factory != nil {
			return
		}
		if c.lookup == nil {
			entry.err = fmt.Errorf("constraint: no factory registered for %s", service)
			return
		}
		entry.factory, entry.err = c.lookup(service)
	})
	if entry.err != nil {
		return nil, entry.err
	}
	if entry.factory == nil {
		return nil, fmt.Errorf("constraint: no factory registered for %s", service)
	}
	return entry.factory(extras...)
}

// ContextResolver returns a Resolver whose ProviderService yields the
// context-backed identifier provider. It is the default wiring for
// middleware-managed identifiers.
func ContextResolver() Resolver {
	cache := NewFactoryCache(func(service string) (Factory, error) {
		if service != ProviderService {
			return nil, fmt.Errorf("constraint: unknown service %s", service)
		}
		return func(...any) (any, error) {
			return ContextProvider{}, nil
		}, nil
	})
	return cache
}
