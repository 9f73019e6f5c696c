// Package openapi derives form control tags from an OpenAPI document. Each
// request-body property of an operation maps to one input, select, or
// textarea builder, giving schema-driven views the same tag plumbing as
// hand-written markup.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-markup/pkg/tag"
)

// Control couples a property name with its built element and render mode.
type Control struct {
	Name     string
	Required bool
	Builder  *tag.Builder
	Mode     tag.RenderMode
}

// HTML serializes the control in its render mode.
func (c Control) HTML() string {
	if c.Builder == nil {
		return ""
	}
	return c.Builder.Render(c.Mode)
}

// Controls loads an OpenAPI document and derives one control per request
// body property of the identified operation, ordered by property name.
// Operations without an operationId match the teacher-style fallback key
// "method:path" in lowercase method form.
func Controls(ctx context.Context, raw []byte, operationID string, options ...tag.Option) ([]Control, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation, err := findOperation(spec, operationID)
	if err != nil {
		return nil, err
	}

	schema := requestSchema(operation)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: operation %q has no request body properties", operationID)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	controls := make([]Control, 0, len(names))
	for _, name := range names {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		control, err := buildControl(name, property.Value, required[name], options...)
		if err != nil {
			return nil, fmt.Errorf("openapi: property %q: %w", name, err)
		}
		controls = append(controls, control)
	}
	return controls, nil
}

func findOperation(spec *openapi3.T, operationID string) (*openapi3.Operation, error) {
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range map[string]*openapi3.Operation{
			"GET": item.Get, "PUT": item.Put, "POST": item.Post,
			"DELETE": item.Delete, "PATCH": item.Patch,
		} {
			if operation == nil {
				continue
			}
			opID := operation.OperationID
			if opID == "" {
				opID = strings.ToLower(method) + ":" + path
			}
			if opID == operationID {
				return operation, nil
			}
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// Long-form strings render as textareas once their declared maxLength
// exceeds what a single-line input comfortably holds.
const textareaLengthThreshold = 255

func buildControl(name string, schema *openapi3.Schema, isRequired bool, options ...tag.Option) (Control, error) {
	if len(schema.Enum) > 0 {
		return buildSelect(name, schema, isRequired, options...)
	}
	if isTextarea(schema) {
		return buildTextarea(name, isRequired, options...)
	}

	b, err := tag.New("input", options...)
	if err != nil {
		return Control{}, err
	}
	if err := decorateControl(b, name, isRequired); err != nil {
		return Control{}, err
	}
	if err := b.SetAttribute("type", inputType(schema)); err != nil {
		return Control{}, err
	}
	return Control{Name: name, Required: isRequired, Builder: b, Mode: tag.SelfClosing}, nil
}

func buildSelect(name string, schema *openapi3.Schema, isRequired bool, options ...tag.Option) (Control, error) {
	b, err := tag.New("select", options...)
	if err != nil {
		return Control{}, err
	}
	if err := decorateControl(b, name, isRequired); err != nil {
		return Control{}, err
	}

	var inner strings.Builder
	for _, value := range schema.Enum {
		option, err := tag.New("option", options...)
		if err != nil {
			return Control{}, err
		}
		label := fmt.Sprintf("%v", value)
		if err := option.SetAttribute("value", label); err != nil {
			return Control{}, err
		}
		option.SetInnerText(label)
		inner.WriteString(option.String())
	}
	b.SetInnerHTML(inner.String())

	return Control{Name: name, Required: isRequired, Builder: b, Mode: tag.Normal}, nil
}

func buildTextarea(name string, isRequired bool, options ...tag.Option) (Control, error) {
	b, err := tag.New("textarea", options...)
	if err != nil {
		return Control{}, err
	}
	if err := decorateControl(b, name, isRequired); err != nil {
		return Control{}, err
	}
	return Control{Name: name, Required: isRequired, Builder: b, Mode: tag.Normal}, nil
}

func isTextarea(schema *openapi3.Schema) bool {
	if firstType(schema.Type) != "string" {
		return false
	}
	if schema.Format == "textarea" {
		return true
	}
	return schema.MaxLength != nil && *schema.MaxLength > textareaLengthThreshold
}

func decorateControl(b *tag.Builder, name string, isRequired bool) error {
	if err := b.SetAttribute("name", name); err != nil {
		return err
	}
	b.GenerateID(name, "_")
	if isRequired {
		if err := b.SetAttribute("required", "required"); err != nil {
			return err
		}
	}
	return nil
}

func inputType(schema *openapi3.Schema) string {
	switch firstType(schema.Type) {
	case "boolean":
		return "checkbox"
	case "integer", "number":
		return "number"
	case "string":
		switch schema.Format {
		case "email":
			return "email"
		case "date":
			return "date"
		case "date-time":
			return "datetime-local"
		case "password":
			return "password"
		case "uri", "url":
			return "url"
		}
	}
	return "text"
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
