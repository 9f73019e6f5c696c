package fragment

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-markup/pkg/tag"
)

var (
	defaultFiltersOnce sync.Once
	defaultFiltersErr  error
)

// registerDefaultFilters installs the markup filters on the process-global
// pongo2 filter table. Safe to call from every engine construction.
func registerDefaultFilters() error {
	defaultFiltersOnce.Do(func() {
		defaultFiltersErr = registerFilters(map[string]pongo2.FilterFunction{
			"attr_escape": filterAttrEscape,
			"sanitize_id": filterSanitizeID,
		})
	})
	return defaultFiltersErr
}

func registerFilters(filters map[string]pongo2.FilterFunction) error {
	for name, fn := range filters {
		if pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("fragment: register filter %q: %w", name, err)
		}
	}
	return nil
}

// filterAttrEscape escapes a value for use inside an HTML attribute.
func filterAttrEscape(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(tag.DefaultEncoder().Encode(in.String())), nil
}

// filterSanitizeID rewrites a value into a safe HTML id. The filter parameter
// supplies the replacement string, defaulting to "_".
func filterSanitizeID(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	replacement := "_"
	if param != nil && param.String() != "" {
		replacement = param.String()
	}
	return pongo2.AsValue(tag.SanitizeID(in.String(), replacement)), nil
}

// TagValue renders builder and marks the result safe so pongo2 does not
// re-escape the markup. Nil builders render as an empty string.
func TagValue(builder *tag.Builder) *pongo2.Value {
	if builder == nil {
		return pongo2.AsSafeValue("")
	}
	return pongo2.AsSafeValue(builder.String())
}

// TagContext converts a map of named builders into template context values,
// each pre-rendered and marked safe.
func TagContext(builders map[string]*tag.Builder) map[string]any {
	out := make(map[string]any, len(builders))
	for name, builder := range builders {
		out[name] = TagValue(builder)
	}
	return out
}
