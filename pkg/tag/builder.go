package tag

import (
	"errors"
	"strings"
)

// RenderMode selects which portion of the element Render emits.
type RenderMode int

const (
	// Normal emits the start tag, the inner content as-is, and the end tag.
	Normal RenderMode = iota
	// StartTag emits only the opening tag with attributes.
	StartTag
	// EndTag emits only the closing tag.
	EndTag
	// SelfClosing emits a single self-closed tag with attributes.
	SelfClosing
)

// Option customises a Builder at construction time.
type Option func(*Builder)

// WithEncoder substitutes the escaping collaborator used for attribute
// values and SetInnerText. Passing nil keeps the default HTML encoder.
func WithEncoder(enc Encoder) Option {
	return func(b *Builder) {
		if enc == nil {
			return
		}
		b.encoder = enc
	}
}

// Builder assembles one HTML element. The zero value is not usable; construct
// through New or MustNew.
type Builder struct {
	tagName string
	attrs   attributeSet
	inner   string
	encoder Encoder
}

// New constructs a Builder for the given tag name. The name is required.
func New(tagName string, options ...Option) (*Builder, error) {
	if strings.TrimSpace(tagName) == "" {
		return nil, errors.New("tag: tag name is required")
	}
	b := &Builder{
		tagName: tagName,
		attrs:   newAttributeSet(),
		encoder: DefaultEncoder(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b, nil
}

// MustNew constructs a Builder and panics on invalid input. Intended for
// static tag names known at compile time.
func MustNew(tagName string, options ...Option) *Builder {
	b, err := New(tagName, options...)
	if err != nil {
		panic(err)
	}
	return b
}

// TagName returns the element name supplied at construction.
func (b *Builder) TagName() string {
	return b.tagName
}

// Attribute reports the stored value for key, matching case-insensitively.
func (b *Builder) Attribute(key string) (string, bool) {
	return b.attrs.get(key)
}

// Attributes returns a copy of the attribute map keyed by the first-inserted
// casing of each name.
func (b *Builder) Attributes() map[string]string {
	return b.attrs.snapshot()
}

// AddCSSClass prepends value to the "class" attribute. When a class list is
// already present the new value comes first, separated by a single space.
func (b *Builder) AddCSSClass(value string) {
	if existing, ok := b.attrs.get("class"); ok {
		b.attrs.set("class", value+" "+existing)
		return
	}
	b.attrs.set("class", value)
}

// GenerateID derives an "id" attribute from name using SanitizeID. The method
// is a no-op whenever an "id" key is already present, regardless of its
// value; key presence, not value, is the gate.
func (b *Builder) GenerateID(name, replacement string) {
	if b.attrs.has("id") {
		return
	}
	if sanitized := SanitizeID(name, replacement); sanitized != "" {
		b.attrs.set("id", sanitized)
	}
}

// MergeAttribute stores value under key unless the key is already present.
func (b *Builder) MergeAttribute(key, value string) error {
	return b.mergeAttribute(key, value, false)
}

// SetAttribute stores value under key, replacing any existing entry. The
// first-inserted casing of the key is retained.
func (b *Builder) SetAttribute(key, value string) error {
	return b.mergeAttribute(key, value, true)
}

func (b *Builder) mergeAttribute(key, value string, replace bool) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return errors.New("tag: attribute key is required")
	}
	if !replace && b.attrs.has(key) {
		return nil
	}
	b.attrs.set(key, value)
	return nil
}

// MergeAttributes applies mergeAttribute semantics to every entry in values.
// Non-string values are converted with locale-invariant formatting. A nil
// map is a no-op.
func (b *Builder) MergeAttributes(values map[string]any, replace bool) error {
	if values == nil {
		return nil
	}
	for key, value := range values {
		if err := b.mergeAttribute(key, formatValue(value), replace); err != nil {
			return err
		}
	}
	return nil
}

// SetInnerText stores the encoded form of text as the inner content, so
// rendering emits it exactly once without double-escaping.
func (b *Builder) SetInnerText(text string) {
	b.inner = b.encoder.Encode(text)
}

// SetInnerHTML stores raw markup as the inner content. Callers own the
// safety of the fragment; see SanitizerEncoder for untrusted input.
func (b *Builder) SetInnerHTML(markup string) {
	b.inner = markup
}

// InnerHTML returns the stored inner content.
func (b *Builder) InnerHTML() string {
	return b.inner
}

// String renders the full element, equivalent to Render(Normal).
func (b *Builder) String() string {
	return b.Render(Normal)
}

// Render serializes the element in the requested mode. Attributes are
// emitted in case-insensitive sorted key order with encoder-escaped values;
// an "id" attribute with an empty value is suppressed from the output while
// remaining in the attribute map.
func (b *Builder) Render(mode RenderMode) string {
	var out strings.Builder
	out.Grow(len(b.tagName) + len(b.inner) + 16)

	switch mode {
	case EndTag:
		out.WriteString("</")
		out.WriteString(b.tagName)
		out.WriteByte('>')
	case StartTag, SelfClosing:
		out.WriteByte('<')
		out.WriteString(b.tagName)
		b.writeAttributes(&out)
		if mode == SelfClosing {
			out.WriteString(" />")
		} else {
			out.WriteByte('>')
		}
	default:
		out.WriteByte('<')
		out.WriteString(b.tagName)
		b.writeAttributes(&out)
		out.WriteByte('>')
		out.WriteString(b.inner)
		out.WriteString("</")
		out.WriteString(b.tagName)
		out.WriteByte('>')
	}
	return out.String()
}

func (b *Builder) writeAttributes(out *strings.Builder) {
	for _, attr := range b.attrs.sorted() {
		if attr.value == "" && strings.EqualFold(attr.name, "id") {
			continue
		}
		out.WriteByte(' ')
		out.WriteString(attr.name)
		out.WriteString(`="`)
		out.WriteString(b.encoder.Encode(attr.value))
		out.WriteByte('"')
	}
}
