// Package scopeid extracts a scoped identifier from inbound requests and
// gates route dispatch on it. The middleware copies the identifier from a
// configurable header (optionally falling back to a query parameter) into
// the request context, where pkg/constraint predicates read it. Handle and
// RegisterRoutes wrap net/http handlers so that candidates whose constraints
// reject the request answer 404, mirroring action-selection filtering.
package scopeid
