package constraint

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithIdentifier(t *testing.T, id string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	return req.WithContext(WithIdentifier(req.Context(), id))
}

func TestRequestMatch_AcceptsOnlyEqualIdentifier(t *testing.T) {
	decl := MatchIdentifier("abc")
	c, err := decl.Constraint(ContextResolver())
	if err != nil {
		t.Fatalf("realize constraint: %v", err)
	}

	if !c.Accept(requestWithIdentifier(t, "abc")) {
		t.Fatal("expected equal identifier to match")
	}
	for _, other := range []string{"ABC", "abcd", ""} {
		if c.Accept(requestWithIdentifier(t, other)) {
			t.Fatalf("identifier %q must not match %q", other, "abc")
		}
	}
}

func TestRequestMatch_AbsentIdentifierNeverMatches(t *testing.T) {
	c, err := MatchIdentifier("abc").Constraint(ContextResolver())
	if err != nil {
		t.Fatalf("realize constraint: %v", err)
	}

	bare := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if c.Accept(bare) {
		t.Fatal("request without identifier must not match")
	}
}

func TestRequestMatch_EmptyExpectedMatchesPresentEmpty(t *testing.T) {
	c, err := MatchIdentifier("").Constraint(ContextResolver())
	if err != nil {
		t.Fatalf("realize constraint: %v", err)
	}

	if !c.Accept(requestWithIdentifier(t, "")) {
		t.Fatal("present empty identifier should match empty declaration")
	}
	if c.Accept(httptest.NewRequest(http.MethodGet, "/resource", nil)) {
		t.Fatal("absent identifier must not match empty declaration")
	}
}

func TestRequestMatch_DefaultOrderIsZero(t *testing.T) {
	c, err := MatchIdentifier("x").Constraint(ContextResolver())
	if err != nil {
		t.Fatalf("realize constraint: %v", err)
	}
	if c.Order() != 0 {
		t.Fatalf("expected default order 0, got %d", c.Order())
	}
}

func TestRequestMatch_ResolutionErrorPropagates(t *testing.T) {
	resolveErr := errors.New("provider not registered")
	failing := ResolverFunc(func(string, ...any) (any, error) {
		return nil, resolveErr
	})

	if _, err := MatchIdentifier("x").Constraint(failing); !errors.Is(err, resolveErr) {
		t.Fatalf("expected resolver error to propagate, got %v", err)
	}
}

func TestRequestMatch_RejectsWrongProviderType(t *testing.T) {
	bad := ResolverFunc(func(string, ...any) (any, error) {
		return struct{}{}, nil
	})
	if _, err := MatchIdentifier("x").Constraint(bad); err == nil {
		t.Fatal("expected error for non-Provider service")
	}
}

func TestRequestMatch_NilResolver(t *testing.T) {
	if _, err := MatchIdentifier("x").Constraint(nil); err == nil {
		t.Fatal("expected error for nil resolver")
	}
}

func TestRequestMatch_ReceivesExpectedAsExtra(t *testing.T) {
	var captured []any
	res := ResolverFunc(func(service string, extras ...any) (any, error) {
		captured = extras
		return ContextProvider{}, nil
	})

	if _, err := MatchIdentifier("tenant-9").Constraint(res); err != nil {
		t.Fatalf("realize constraint: %v", err)
	}
	if len(captured) != 1 || captured[0] != "tenant-9" {
		t.Fatalf("expected declared identifier as extra, got %v", captured)
	}
}
