// Package themeclass maps go-theme design tokens onto tag class lists. A
// Resolver selects a theme/variant once and answers token lookups from the
// merged manifest, so view code can stay ignorant of theme manifests while
// still emitting themed class attributes.
package themeclass

import (
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-markup/pkg/tag"
)

// Resolver answers token → class lookups for one theme/variant selection.
// Safe for concurrent use; selection happens lazily on first lookup.
type Resolver struct {
	selector theme.ThemeSelector
	name     string
	variant  string

	once   sync.Once
	tokens map[string]string
	err    error
}

// New builds a Resolver over selector for the given theme and variant names.
func New(selector theme.ThemeSelector, name, variant string) (*Resolver, error) {
	if selector == nil {
		return nil, fmt.Errorf("themeclass: selector is required")
	}
	return &Resolver{selector: selector, name: name, variant: variant}, nil
}

// Class returns the class list registered for token. Unknown tokens resolve
// to empty without error so partially themed views degrade quietly.
func (r *Resolver) Class(token string) (string, error) {
	if err := r.load(); err != nil {
		return "", err
	}
	return r.tokens[token], nil
}

// Apply appends the class lists for every named token to builder, skipping
// unknown tokens. Token order is preserved: later tokens end up earlier in
// the class attribute because AddCSSClass prepends.
func (r *Resolver) Apply(builder *tag.Builder, tokens ...string) error {
	if builder == nil {
		return fmt.Errorf("themeclass: builder is required")
	}
	if err := r.load(); err != nil {
		return err
	}
	for _, token := range tokens {
		if cls := r.tokens[token]; strings.TrimSpace(cls) != "" {
			builder.AddCSSClass(cls)
		}
	}
	return nil
}

func (r *Resolver) load() error {
	r.once.Do(func() {
		selection, err := r.selector.Select(r.name, r.variant)
		if err != nil {
			r.err = fmt.Errorf("themeclass: select theme %s/%s: %w", r.name, r.variant, err)
			return
		}
		r.tokens = mergeTokens(selection)
	})
	return r.err
}

// mergeTokens overlays variant tokens on the base manifest tokens.
func mergeTokens(selection *theme.Selection) map[string]string {
	merged := make(map[string]string)
	if selection == nil || selection.Manifest == nil {
		return merged
	}
	for token, cls := range selection.Manifest.Tokens {
		merged[token] = cls
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for token, cls := range variant.Tokens {
			merged[token] = cls
		}
	}
	return merged
}
