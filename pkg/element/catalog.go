package element

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownType is returned by New when the requested type is not part of
// the element catalog.
var ErrUnknownType = fmt.Errorf("element: unknown type")

type catalogEntry struct {
	label    string
	defaults func(*Element)
}

// catalog maps every known type to its creation defaults. Container types
// start with an empty canonical child collection so callers can append
// without nil checks; the legacy shapes are only ever populated by imported
// documents.
var catalog = map[Type]catalogEntry{
	TypeText:      {label: "Text Input"},
	TypeTextarea:  {label: "Text Area"},
	TypeNumber:    {label: "Number Input"},
	TypeEmail:     {label: "Email Address"},
	TypePhone:     {label: "Phone Number"},
	TypeURL:       {label: "Website URL"},
	TypeDate:      {label: "Date Picker"},
	TypeFile:      {label: "File Upload"},
	TypeCheckbox:  {label: "Checkbox"},
	TypeDivider:   {label: "Divider"},
	TypeParagraph: {label: "Paragraph", defaults: func(e *Element) {
		e.Text = "Paragraph text"
	}},
	TypeHeading: {label: "Heading", defaults: func(e *Element) {
		e.Level = "h2"
	}},
	TypeSelect: {label: "Dropdown", defaults: func(e *Element) {
		e.Options = []string{"Option 1", "Option 2", "Option 3"}
	}},
	TypeRadio: {label: "Radio Group", defaults: func(e *Element) {
		e.Options = []string{"Option 1", "Option 2", "Option 3"}
	}},
	TypeSection: {label: "Section", defaults: func(e *Element) {
		e.Children = []*Element{}
	}},
	TypeCard: {label: "Card", defaults: func(e *Element) {
		e.Children = []*Element{}
	}},
	TypeColumns2: {label: "Two Columns", defaults: func(e *Element) {
		e.Column1Children = []*Element{}
		e.Column2Children = []*Element{}
	}},
	TypeColumns3: {label: "Three Columns", defaults: func(e *Element) {
		e.Column1Children = []*Element{}
		e.Column2Children = []*Element{}
		e.Column3Children = []*Element{}
	}},
	TypeGrid: {label: "Grid", defaults: func(e *Element) {
		e.Rows = [][]*Element{}
	}},
	TypeGridContainer: {label: "Grid Container", defaults: func(e *Element) {
		e.Container = true
		e.Spacing = 2
		e.Children = []*Element{}
	}},
	TypeGridItem: {label: "Grid Item", defaults: func(e *Element) {
		e.Item = true
		e.Cols = &ColSpans{XS: GridColumns}
		e.Children = []*Element{}
	}},
}

// New creates a fully defaulted element of the requested type with a freshly
// generated id. Types outside the catalog yield ErrUnknownType.
func New(t Type) (*Element, error) {
	entry, ok := catalog[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	el := &Element{
		ID:    NewID(t),
		Type:  t,
		Label: entry.label,
	}
	if entry.defaults != nil {
		entry.defaults(el)
	}
	return el, nil
}

// KnownType reports whether t is part of the element catalog.
func KnownType(t Type) bool {
	_, ok := catalog[t]
	return ok
}

// NewID generates a type-prefixed, collision-resistant element id.
func NewID(t Type) string {
	return string(t) + "-" + uuid.NewString()
}
