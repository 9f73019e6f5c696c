// Package tag builds single HTML elements: a tag name, a case-insensitive
// attribute set serialized in sorted key order, and inner content that is
// escaped exactly once. Builders support four render modes (full element,
// start tag, end tag, self-closing) and delegate escaping to a pluggable
// Encoder so callers can substitute sanitizing policies.
//
// Builder instances are not safe for concurrent mutation; confine each
// builder to one goroutine or synchronize externally.
package tag
