// Package markup assembles attribute-escaped HTML elements and gates route
// dispatch on request-scoped identifiers. The root package re-exports the
// most common entry points; pkg/tag, pkg/constraint, and the supporting
// packages carry the full surface.
package markup

import (
	"errors"

	"github.com/goliatone/go-markup/pkg/constraint"
	"github.com/goliatone/go-markup/pkg/fragment"
	"github.com/goliatone/go-markup/pkg/tag"
)

// Builder assembles one HTML element; see pkg/tag.
type Builder = tag.Builder

// RenderMode selects which portion of an element to serialize.
type RenderMode = tag.RenderMode

// Render modes re-exported for callers of the root package.
const (
	Normal      = tag.Normal
	StartTag    = tag.StartTag
	EndTag      = tag.EndTag
	SelfClosing = tag.SelfClosing
)

// RequestMatch is the immutable declaration form of an identifier constraint.
type RequestMatch = constraint.RequestMatch

// NewTag constructs a tag builder; see tag.New.
func NewTag(tagName string, options ...tag.Option) (*Builder, error) {
	return tag.New(tagName, options...)
}

// SanitizeID rewrites a raw name into a safe HTML id; see tag.SanitizeID.
func SanitizeID(name, replacement string) string {
	return tag.SanitizeID(name, replacement)
}

// MatchIdentifier declares a constraint accepting requests whose scoped
// identifier equals expected; see constraint.MatchIdentifier.
func MatchIdentifier(expected string) RequestMatch {
	return constraint.MatchIdentifier(expected)
}

// RenderFragment renders an inline pongo2 fragment with pre-rendered tag
// builders available under their map names.
func RenderFragment(engine *fragment.Engine, content string, builders map[string]*tag.Builder) (string, error) {
	if engine == nil {
		return "", errors.New("markup: fragment engine is required")
	}
	return engine.RenderString(content, fragment.TagContext(builders))
}
