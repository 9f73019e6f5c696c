package constraint

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestFactoryCache_LookupRunsOncePerKey(t *testing.T) {
	var lookups atomic.Int32
	cache := NewFactoryCache(func(service string) (Factory, error) {
		lookups.Add(1)
		return func(...any) (any, error) {
			return service, nil
		}, nil
	})

	for range 3 {
		got, err := cache.Resolve("svc")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got != "svc" {
			t.Fatalf("unexpected instance %v", got)
		}
	}
	if lookups.Load() != 1 {
		t.Fatalf("expected a single factory lookup, got %d", lookups.Load())
	}
}

func TestFactoryCache_ConcurrentFirstUse(t *testing.T) {
	var lookups atomic.Int32
	cache := NewFactoryCache(func(string) (Factory, error) {
		lookups.Add(1)
		return func(...any) (any, error) { return "built", nil }, nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Resolve("svc"); err != nil {
				t.Errorf("resolve: %v", err)
			}
		}()
	}
	wg.Wait()

	if lookups.Load() != 1 {
		t.Fatalf("factory constructed %d times, want 1", lookups.Load())
	}
}

func TestFactoryCache_RegisterBypassesLookup(t *testing.T) {
	cache := NewFactoryCache(func(string) (Factory, error) {
		t.Fatal("lookup must not run for registered services")
		return nil, nil
	})
	cache.Register("svc", func(extras ...any) (any, error) {
		return len(extras), nil
	})

	got, err := cache.Resolve("svc", "a", "b")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != 2 {
		t.Fatalf("extras not forwarded, got %v", got)
	}
}

func TestFactoryCache_UnknownService(t *testing.T) {
	cache := NewFactoryCache(nil)
	if _, err := cache.Resolve("missing"); err == nil {
		t.Fatal("expected error for unknown service")
	}
}

func TestContextResolver_YieldsContextProvider(t *testing.T) {
	resolved, err := ContextResolver().Resolve(ProviderService, "expected")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := resolved.(Provider); !ok {
		t.Fatalf("expected a Provider, got %T", resolved)
	}

	if _, err := ContextResolver().Resolve("other"); err == nil {
		t.Fatal("expected error for unknown service key")
	}
}
