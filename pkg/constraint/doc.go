// Package constraint filters route candidates by a request-scoped identifier.
// A declaration (MatchIdentifier) is an immutable value attached to an
// endpoint at registration time; realizing it through a Resolver yields a
// per-request predicate whose Accept method compares the declared identifier
// against the one carried by the inbound request. Declarations are safe to
// share across concurrent evaluations; realized constraints are cheap and
// may be rebuilt per dispatch.
package constraint
