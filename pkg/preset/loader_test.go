package preset

import (
	"testing"
	"testing/fstest"
)

func TestLoadFS_ParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"tags.yaml": &fstest.MapFile{Data: []byte(`
presets:
  submit:
    tag: button
    classes: [btn, primary]
    attributes:
      type: submit
    text: Save
`)},
		"rules.json": &fstest.MapFile{Data: []byte(`{
  "presets": {
    "divider": {"tag": "hr", "selfClosing": true}
  }
}`)},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(store.Names()) != 2 {
		t.Fatalf("expected 2 presets, got %v", store.Names())
	}

	b, err := store.Build("submit")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got, _ := b.Attribute("class"); got != "btn primary" {
		t.Fatalf("unexpected class list %q", got)
	}
	if got, _ := b.Attribute("type"); got != "submit" {
		t.Fatalf("unexpected type %q", got)
	}

	divider, ok := store.Preset("divider")
	if !ok {
		t.Fatal("divider preset missing")
	}
	out, err := divider.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<hr />" {
		t.Fatalf("unexpected divider output %q", out)
	}
}

func TestLoadFS_NilFSYieldsEmptyStore(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(store.Names()) != 0 {
		t.Fatalf("expected empty store, got %v", store.Names())
	}
}

func TestLoadFS_DuplicateNamesRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("presets:\n  x:\n    tag: div\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("presets:\n  x:\n    tag: span\n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected duplicate preset error")
	}
}

func TestLoadFS_MissingTagRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("presets:\n  x:\n    classes: [c]\n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected missing tag error")
	}
}

func TestStore_UnknownPreset(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Build("nope"); err == nil {
		t.Fatal("expected unknown preset error")
	}
}
