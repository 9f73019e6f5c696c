// Package preset loads named tag definitions from JSON or YAML documents and
// materializes them as tag builders. Presets keep view code free of repeated
// attribute plumbing: declare the element once, build it wherever needed.
package preset

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-markup/pkg/tag"
)

// Preset describes one reusable element definition.
type Preset struct {
	// Tag is the element name. Required.
	Tag string `json:"tag" yaml:"tag"`
	// ID seeds GenerateID; it is sanitized with "_" as the replacement.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Classes are applied front-to-back, so the first entry ends up first in
	// the rendered class list.
	Classes    []string          `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	// Text is set as encoded inner text when present.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// SelfClosing selects the render mode Build reports alongside the builder.
	SelfClosing bool `json:"selfClosing,omitempty" yaml:"selfClosing,omitempty"`
}

// Builder materializes the preset as a tag builder.
func (p Preset) Builder(options ...tag.Option) (*tag.Builder, error) {
	b, err := tag.New(p.Tag, options...)
	if err != nil {
		return nil, fmt.Errorf("preset: build %q: %w", p.Tag, err)
	}
	for key, value := range p.Attributes {
		if err := b.MergeAttribute(key, value); err != nil {
			return nil, fmt.Errorf("preset: build %q: %w", p.Tag, err)
		}
	}
	for i := len(p.Classes) - 1; i >= 0; i-- {
		cls := strings.TrimSpace(p.Classes[i])
		if cls == "" {
			continue
		}
		b.AddCSSClass(cls)
	}
	if p.ID != "" {
		b.GenerateID(p.ID, "_")
	}
	if p.Text != "" {
		b.SetInnerText(p.Text)
	}
	return b, nil
}

// RenderMode returns the mode Render should use for this preset.
func (p Preset) RenderMode() tag.RenderMode {
	if p.SelfClosing {
		return tag.SelfClosing
	}
	return tag.Normal
}

// Render materializes the preset and serializes it in one step.
func (p Preset) Render(options ...tag.Option) (string, error) {
	b, err := p.Builder(options...)
	if err != nil {
		return "", err
	}
	return b.Render(p.RenderMode()), nil
}
