package constraint

import (
	"fmt"
	"net/http"
)

// Constraint decides whether a route candidate should handle a request.
// Order ranks constraints during evaluation; lower values run first.
type Constraint interface {
	Accept(r *http.Request) bool
	Order() int
}

// RequestMatch is the immutable declaration form of an identifier
// constraint. The zero value matches only requests whose identifier is
// present and empty.
type RequestMatch struct {
	expected string
}

// MatchIdentifier declares a constraint accepting requests whose scoped
// identifier equals expected. No validation is applied; an empty expected
// value is legal.
func MatchIdentifier(expected string) RequestMatch {
	return RequestMatch{expected: expected}
}

// Expected returns the identifier the declaration was created with.
func (m RequestMatch) Expected() string {
	return m.expected
}

// Constraint realizes the declaration into a runtime predicate, asking res
// for the identifier provider service. Resolution failures propagate
// unwrapped beyond the added context; nothing is retried or translated.
func (m RequestMatch) Constraint(res Resolver) (Constraint, error) {
	if res == nil {
		return nil, fmt.Errorf("constraint: resolver is required")
	}
	resolved, err := res.Resolve(ProviderService, m.expected)
	if err != nil {
		return nil, fmt.Errorf("constraint: resolve %s: %w", ProviderService, err)
	}
	provider, ok := resolved.(Provider)
	if !ok {
		return nil, fmt.Errorf("constraint: service %s resolved to %T, want Provider", ProviderService, resolved)
	}
	return identifierConstraint{expected: m.expected, provider: provider}, nil
}

// identifierConstraint is the per-evaluation capability produced by a
// RequestMatch declaration.
type identifierConstraint struct {
	expected string
	provider Provider
	order    int
}

// Accept reports whether the request carries an identifier ordinally equal
// to the declared one. Requests without an identifier never match.
func (c identifierConstraint) Accept(r *http.Request) bool {
	current, ok := c.provider.CurrentIdentifier(r)
	return ok && current == c.expected
}

// Order returns the constraint priority, zero unless configured elsewhere.
func (c identifierConstraint) Order() int {
	return c.order
}
