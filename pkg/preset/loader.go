package preset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markup/pkg/tag"
)

// Store holds named presets collected from one or more documents.
type Store struct {
	presets map[string]Preset
}

type document struct {
	Presets map[string]Preset `json:"presets" yaml:"presets"`
}

// LoadFS walks fsys and parses every JSON/YAML preset file. When fsys is nil
// or holds no preset files the returned store is empty. Duplicate preset
// names across files are an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("preset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, p := range doc.Presets {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("preset: file %s defines an empty preset name", path)
			}
			if _, exists := store.presets[trimmed]; exists {
				return fmt.Errorf("preset: duplicate preset %q (file %s)", trimmed, path)
			}
			if strings.TrimSpace(p.Tag) == "" {
				return fmt.Errorf("preset: preset %q (file %s) is missing a tag name", trimmed, path)
			}
			store.presets[trimmed] = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Preset returns the definition stored under name.
func (s *Store) Preset(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	p, ok := s.presets[name]
	return p, ok
}

// Names lists the stored preset names in map order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	return names
}

// Build materializes the named preset as a tag builder.
func (s *Store) Build(name string, options ...tag.Option) (*tag.Builder, error) {
	p, ok := s.Preset(name)
	if !ok {
		return nil, fmt.Errorf("preset: unknown preset %q", name)
	}
	return p.Builder(options...)
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("preset: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	return doc, nil
}
