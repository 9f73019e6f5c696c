package tag

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Encoder escapes raw text for HTML attribute and content contexts. Builders
// call it once per value; encoded output is stored and never re-encoded.
type Encoder interface {
	Encode(raw string) string
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(string) string

// Encode calls fn(raw).
func (fn EncoderFunc) Encode(raw string) string {
	return fn(raw)
}

// DefaultEncoder returns the standard HTML encoder, escaping &, <, >, " and '.
func DefaultEncoder() Encoder {
	return EncoderFunc(html.EscapeString)
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// SanitizerEncoder returns an encoder that strips markup from untrusted
// input. The strict policy removes every element and escapes the remaining
// text, so the output is already safe for content contexts. Use it with
// WithEncoder when inner text may contain hostile fragments rather than
// plain prose.
func SanitizerEncoder() Encoder {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	policy := strictPolicy
	return EncoderFunc(policy.Sanitize)
}
