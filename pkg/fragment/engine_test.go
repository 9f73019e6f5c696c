package fragment

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-markup/pkg/tag"
)

func newTestEngine(t *testing.T, files map[string]string) *Engine {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	engine, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestRenderString_InlineFragment(t *testing.T) {
	engine := newTestEngine(t, nil)

	out, err := engine.RenderString(`<section>{{ title }}</section>`, map[string]any{"title": "Hello"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<section>Hello</section>" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	engine := newTestEngine(t, map[string]string{
		"panel.html": `<div class="panel">{{ body }}</div>`,
	})

	out, err := engine.RenderTemplate("panel", map[string]any{"body": "content"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != `<div class="panel">content</div>` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_DetectsInlineContent(t *testing.T) {
	engine := newTestEngine(t, map[string]string{
		"named.html": `file`,
	})

	if out, _ := engine.Render("named", nil); out != "file" {
		t.Fatalf("expected file template, got %q", out)
	}
	if out, _ := engine.Render("{{ x }}", map[string]any{"x": "inline"}); out != "inline" {
		t.Fatalf("expected inline render, got %q", out)
	}
}

func TestTagValue_NotReEscaped(t *testing.T) {
	engine := newTestEngine(t, nil)

	link := tag.MustNew("a")
	link.SetAttribute("href", "/docs")
	link.SetInnerText("Docs")

	out, err := engine.RenderString(`<nav>{{ link }}</nav>`, map[string]any{
		"link": TagValue(link),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != `<nav><a href="/docs">Docs</a></nav>` {
		t.Fatalf("builder markup was re-escaped: %q", out)
	}
}

func TestTagContext_ConvertsAllBuilders(t *testing.T) {
	engine := newTestEngine(t, nil)

	ctx := TagContext(map[string]*tag.Builder{
		"first":  tag.MustNew("em"),
		"second": nil,
	})
	out, err := engine.RenderString(`{{ first }}|{{ second }}`, ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<em></em>|" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDefaultFilters(t *testing.T) {
	engine := newTestEngine(t, nil)

	out, err := engine.RenderString(`{{ value|attr_escape }}`, map[string]any{
		"value": `a "quoted" <value>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "&#34;quoted&#34;") || !strings.Contains(out, "&lt;value&gt;") {
		t.Fatalf("attr_escape output %q", out)
	}

	out, err = engine.RenderString(`{{ "1a.b"|sanitize_id }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "za_b" {
		t.Fatalf("sanitize_id output %q", out)
	}
}

func TestRegisterFilter_RejectsDuplicates(t *testing.T) {
	engine := newTestEngine(t, nil)

	if err := engine.RegisterFilter("attr_escape", func(in, _ any) (any, error) {
		return in, nil
	}); err == nil {
		t.Fatal("expected duplicate filter registration to fail")
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRenderTemplate_CachesCompiledTemplates(t *testing.T) {
	engine := newTestEngine(t, map[string]string{
		"row.html": `<tr>{{ cell }}</tr>`,
	})

	for range 2 {
		out, err := engine.RenderTemplate("row", map[string]any{"cell": "x"})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if out != "<tr>x</tr>" {
			t.Fatalf("unexpected output %q", out)
		}
	}
	if len(engine.templates) != 1 {
		t.Fatalf("expected one cached template, got %d", len(engine.templates))
	}
}
