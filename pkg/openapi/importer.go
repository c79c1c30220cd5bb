package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcore/pkg/element"
)

// ImportOptions configures an import pass.
type ImportOptions struct {
	// OperationID selects the operation whose request body seeds the form.
	// When empty the first operation with a request body is used.
	OperationID string
	// ResolveReferences validates the document and resolves external refs.
	ResolveReferences bool
	// Decorators run against the generated tree in order.
	Decorators []element.Decorator
}

var errNoRequestBody = errors.New("openapi import: no operation with a request body")

// Import loads an OpenAPI 3 document and builds an element tree from the
// selected operation's request body schema. Objects become sections, string
// formats map onto the matching input types, enums become dropdowns, and
// schema constraints land in the validation bundle. Element ids are derived
// from property paths so repeated imports of the same document are stable.
func Import(ctx context.Context, raw []byte, opts ImportOptions) (*element.Element, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi import: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi import: load document: %w", err)
	}
	if opts.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi import: validate: %w", err)
		}
	}

	opID, operation, err := selectOperation(spec, opts.OperationID)
	if err != nil {
		return nil, err
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil, fmt.Errorf("%w: %q", errNoRequestBody, opID)
	}

	root := &element.Element{
		ID:    opID,
		Type:  element.TypeSection,
		Label: firstNonEmpty(operation.Summary, humanize(opID)),
	}
	root.Children = buildChildren(opID, schema)

	for _, dec := range opts.Decorators {
		if dec == nil {
			continue
		}
		if err := dec.Decorate(root); err != nil {
			return nil, fmt.Errorf("openapi import: decorate: %w", err)
		}
	}

	return root, nil
}

func selectOperation(spec *openapi3.T, wanted string) (string, *openapi3.Operation, error) {
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return "", nil, errors.New("openapi import: document does not contain any paths")
	}

	paths := make([]string, 0, spec.Paths.Len())
	for path := range spec.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := spec.Paths.Map()[path]
		if item == nil {
			continue
		}
		for _, candidate := range []struct {
			method    string
			operation *openapi3.Operation
		}{
			{"POST", item.Post},
			{"PUT", item.Put},
			{"PATCH", item.Patch},
		} {
			method, operation := candidate.method, candidate.operation
			if operation == nil {
				continue
			}
			opID := operation.OperationID
			if opID == "" {
				opID = strings.ToLower(method) + ":" + path
			}
			if wanted != "" {
				if opID == wanted {
					return opID, operation, nil
				}
				continue
			}
			if requestSchema(operation.RequestBody) != nil {
				return opID, operation, nil
			}
		}
	}

	if wanted != "" {
		return "", nil, fmt.Errorf("openapi import: operation %q not found", wanted)
	}
	return "", nil, errNoRequestBody
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildChildren(path string, schema *openapi3.Schema) []*element.Element {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
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

	children := make([]*element.Element, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		children = append(children, buildElement(path+"."+name, name, ref.Value, required[name]))
	}
	return children
}

func buildElement(path, name string, schema *openapi3.Schema, required bool) *element.Element {
	el := &element.Element{
		ID:          path,
		Type:        elementType(schema),
		Label:       firstNonEmpty(schema.Title, humanize(name)),
		Description: schema.Description,
		Required:    required,
		Default:     schema.Default,
	}

	if len(schema.Enum) > 0 {
		el.Options = make([]string, 0, len(schema.Enum))
		for _, option := range schema.Enum {
			el.Options = append(el.Options, fmt.Sprint(option))
		}
	}

	if el.Type == element.TypeSection {
		el.Children = buildChildren(path, schema)
	}

	el.Validation = validationBundle(schema)
	return el
}

func elementType(schema *openapi3.Schema) element.Type {
	switch schemaType(schema) {
	case "boolean":
		return element.TypeCheckbox
	case "integer", "number":
		return element.TypeNumber
	case "object":
		return element.TypeSection
	case "array":
		return element.TypeSelect
	default:
		if len(schema.Enum) > 0 {
			return element.TypeSelect
		}
		switch schema.Format {
		case "email":
			return element.TypeEmail
		case "uri", "url":
			return element.TypeURL
		case "date", "date-time":
			return element.TypeDate
		case "binary":
			return element.TypeFile
		case "textarea":
			return element.TypeTextarea
		default:
			return element.TypeText
		}
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func validationBundle(schema *openapi3.Schema) *element.Validation {
	var v element.Validation
	populated := false

	if schema.MinLength != 0 {
		length := int(schema.MinLength)
		v.MinLength = &length
		populated = true
	}
	if schema.MaxLength != nil {
		length := int(*schema.MaxLength)
		v.MaxLength = &length
		populated = true
	}
	if schema.Pattern != "" {
		v.Pattern = schema.Pattern
		populated = true
	}
	if schema.Min != nil {
		value := *schema.Min
		v.Min = &value
		populated = true
	}
	if schema.Max != nil {
		value := *schema.Max
		v.Max = &value
		populated = true
	}

	if !populated {
		return nil
	}
	return &v
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// humanize turns property names like "firstName" or "first_name" into
// "First Name".
func humanize(name string) string {
	if name == "" {
		return ""
	}
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
