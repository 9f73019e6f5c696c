package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-markup/pkg/preset"
	"github.com/goliatone/go-markup/pkg/tag"
)

var renderModes = map[string]tag.RenderMode{
	"normal":      tag.Normal,
	"start":       tag.StartTag,
	"end":         tag.EndTag,
	"selfclosing": tag.SelfClosing,
}

func main() {
	tagName := flag.String("tag", "", "element name to build")
	id := flag.String("id", "", "raw id, sanitized before use")
	classes := flag.String("class", "", "space-separated class list")
	attrs := flag.String("attrs", "", "comma-separated key=value attribute pairs")
	text := flag.String("text", "", "inner text, HTML-encoded on output")
	mode := flag.String("mode", "normal", "render mode: normal, start, end, selfclosing")
	presetsDir := flag.String("presets", "", "directory of preset files")
	presetName := flag.String("preset", "", "preset name to build (requires -presets)")
	interactive := flag.Bool("interactive", false, "prompt for the element definition")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	var markup string
	var err error

	switch {
	case *presetName != "":
		markup, err = buildFromPreset(*presetsDir, *presetName)
	case *interactive:
		markup, err = buildInteractive()
	default:
		markup, err = buildFromFlags(*tagName, *id, *classes, *attrs, *text, *mode)
	}
	if err != nil {
		log.Fatalf("Failed to build markup: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Markup written to %s\n", *output)
	} else {
		fmt.Println(markup)
	}
}

func buildFromFlags(tagName, id, classes, attrs, text, mode string) (string, error) {
	renderMode, ok := renderModes[strings.ToLower(strings.TrimSpace(mode))]
	if !ok {
		return "", fmt.Errorf("unknown render mode %q", mode)
	}

	b, err := tag.New(tagName)
	if err != nil {
		return "", err
	}
	for _, pair := range splitPairs(attrs) {
		if err := b.SetAttribute(pair[0], pair[1]); err != nil {
			return "", err
		}
	}
	for _, cls := range reverse(strings.Fields(classes)) {
		b.AddCSSClass(cls)
	}
	if id != "" {
		b.GenerateID(id, "_")
	}
	if text != "" {
		b.SetInnerText(text)
	}
	return b.Render(renderMode), nil
}

func buildFromPreset(dir, name string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("-preset requires -presets")
	}
	store, err := preset.LoadFS(os.DirFS(dir))
	if err != nil {
		return "", err
	}
	p, ok := store.Preset(name)
	if !ok {
		return "", fmt.Errorf("unknown preset %q", name)
	}
	return p.Render()
}

func buildInteractive() (string, error) {
	var tagName string
	if err := survey.AskOne(&survey.Input{
		Message: "Element name:",
		Help:    "The tag to build, e.g. input or section.",
	}, &tagName, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	b, err := tag.New(tagName)
	if err != nil {
		return "", err
	}

	for {
		var more bool
		if err := survey.AskOne(&survey.Confirm{Message: "Add an attribute?"}, &more); err != nil {
			return "", err
		}
		if !more {
			break
		}

		answers := struct {
			Key   string
			Value string
		}{}
		if err := survey.Ask([]*survey.Question{
			{Name: "key", Prompt: &survey.Input{Message: "Attribute name:"}, Validate: survey.Required},
			{Name: "value", Prompt: &survey.Input{Message: "Attribute value:"}},
		}, &answers); err != nil {
			return "", err
		}
		if err := b.SetAttribute(answers.Key, answers.Value); err != nil {
			return "", err
		}
	}

	var text string
	if err := survey.AskOne(&survey.Input{Message: "Inner text (optional):"}, &text); err != nil {
		return "", err
	}
	if text != "" {
		b.SetInnerText(text)
	}

	modeNames := []string{"normal", "start", "end", "selfclosing"}
	var modeName string
	if err := survey.AskOne(&survey.Select{
		Message: "Render mode:",
		Options: modeNames,
		Default: "normal",
	}, &modeName); err != nil {
		return "", err
	}

	return b.Render(renderModes[modeName]), nil
}

func splitPairs(raw string) [][2]string {
	var pairs [][2]string
	for _, chunk := range strings.Split(raw, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		key, value, _ := strings.Cut(chunk, "=")
		pairs = append(pairs, [2]string{strings.TrimSpace(key), strings.TrimSpace(value)})
	}
	return pairs
}

// reverse returns a reversed copy so the first listed class lands first in
// the rendered class attribute despite AddCSSClass prepending.
func reverse(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
