package element

// Type identifies an element's rendering and semantic kind. The set is closed;
// New rejects anything outside the catalog.
type Type string

const (
	TypeText      Type = "text"
	TypeTextarea  Type = "textarea"
	TypeNumber    Type = "number"
	TypeEmail     Type = "email"
	TypePhone     Type = "phone"
	TypeURL       Type = "url"
	TypeSelect    Type = "select"
	TypeRadio     Type = "radio"
	TypeCheckbox  Type = "checkbox"
	TypeDate      Type = "date"
	TypeFile      Type = "file"
	TypeHeading   Type = "heading"
	TypeParagraph Type = "paragraph"
	TypeDivider   Type = "divider"

	TypeSection       Type = "section"
	TypeCard          Type = "card"
	TypeColumns2      Type = "columns-2"
	TypeColumns3      Type = "columns-3"
	TypeGrid          Type = "grid"
	TypeGridContainer Type = "grid-container"
	TypeGridItem      Type = "grid-item"
)

// Breakpoint names a column-span context in the 12-unit grid model.
type Breakpoint string

const (
	BreakpointXS Breakpoint = "xs"
	BreakpointSM Breakpoint = "sm"
	BreakpointMD Breakpoint = "md"
	BreakpointLG Breakpoint = "lg"
	BreakpointXL Breakpoint = "xl"
)

// Breakpoints lists every breakpoint in ascending width order.
var Breakpoints = []Breakpoint{BreakpointXS, BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL}

// GridColumns is the span budget shared by every row at every breakpoint.
const GridColumns = 12

// ColSpans holds per-breakpoint column spans for a grid item. Zero means
// unset; unset breakpoints inherit from XS, and an unset XS defaults to the
// full row width.
type ColSpans struct {
	XS int `json:"xs,omitempty" yaml:"xs,omitempty"`
	SM int `json:"sm,omitempty" yaml:"sm,omitempty"`
	MD int `json:"md,omitempty" yaml:"md,omitempty"`
	LG int `json:"lg,omitempty" yaml:"lg,omitempty"`
	XL int `json:"xl,omitempty" yaml:"xl,omitempty"`
}

// At reports the effective span at the given breakpoint, falling back to the
// XS span and finally to GridColumns when nothing is set.
func (c *ColSpans) At(bp Breakpoint) int {
	if c == nil {
		return GridColumns
	}
	var span int
	switch bp {
	case BreakpointXS:
		span = c.XS
	case BreakpointSM:
		span = c.SM
	case BreakpointMD:
		span = c.MD
	case BreakpointLG:
		span = c.LG
	case BreakpointXL:
		span = c.XL
	}
	if span > 0 {
		return span
	}
	if c.XS > 0 {
		return c.XS
	}
	return GridColumns
}

// Clone returns an independent copy.
func (c *ColSpans) Clone() *ColSpans {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// Validation bundles the optional per-field constraints an author can attach
// to an input element. Message, when set, replaces the generated default for
// whichever constraint fails. Custom predicates cannot be serialised and are
// skipped by the JSON/YAML interchange layer.
type Validation struct {
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Message   string   `json:"message,omitempty" yaml:"message,omitempty"`

	Custom func(value any) bool `json:"-" yaml:"-"`
}

// Clone returns an independent copy. The custom predicate is shared since
// function values are immutable.
func (v *Validation) Clone() *Validation {
	if v == nil {
		return nil
	}
	out := *v
	if v.MinLength != nil {
		value := *v.MinLength
		out.MinLength = &value
	}
	if v.MaxLength != nil {
		value := *v.MaxLength
		out.MaxLength = &value
	}
	if v.Min != nil {
		value := *v.Min
		out.Min = &value
	}
	if v.Max != nil {
		value := *v.Max
		out.Max = &value
	}
	return &out
}

// Element is a single node in the form tree. Structural children occupy
// exactly one of Children, the Column*Children slots, or Rows; the flat grid
// representation marks Container/Item flags and keeps items in Children.
type Element struct {
	ID          string     `json:"id" yaml:"id"`
	Type        Type       `json:"type" yaml:"type"`
	Label       string     `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool       `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []string   `json:"options,omitempty" yaml:"options,omitempty"`
	Validation  *Validation `json:"validation,omitempty" yaml:"validation,omitempty"`
	Default     any        `json:"default,omitempty" yaml:"default,omitempty"`

	// Type-specific attributes.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`

	// Opaque presentation pass-through; never interpreted by the core.
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// Flat grid representation.
	Container bool      `json:"container,omitempty" yaml:"container,omitempty"`
	Item      bool      `json:"item,omitempty" yaml:"item,omitempty"`
	Cols      *ColSpans `json:"cols,omitempty" yaml:"cols,omitempty"`
	Spacing   int       `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	MaxWidth  string    `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`

	// Structural child shapes, mutually exclusive.
	Children        []*Element   `json:"children,omitempty" yaml:"children,omitempty"`
	Column1Children []*Element   `json:"column1Children,omitempty" yaml:"column1Children,omitempty"`
	Column2Children []*Element   `json:"column2Children,omitempty" yaml:"column2Children,omitempty"`
	Column3Children []*Element   `json:"column3Children,omitempty" yaml:"column3Children,omitempty"`
	Rows            [][]*Element `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// IsInput reports whether the element captures a value from the person
// filling the form. Layout and content elements carry no value and are
// skipped by the validator.
func (t Type) IsInput() bool {
	switch t {
	case TypeText, TypeTextarea, TypeNumber, TypeEmail, TypePhone, TypeURL,
		TypeSelect, TypeRadio, TypeCheckbox, TypeDate, TypeFile:
		return true
	default:
		return false
	}
}

// IsContainer reports whether the element type holds child elements.
func (t Type) IsContainer() bool {
	switch t {
	case TypeSection, TypeCard, TypeColumns2, TypeColumns3, TypeGrid,
		TypeGridContainer, TypeGridItem:
		return true
	default:
		return false
	}
}

// ChildElements returns the element's children regardless of which structural
// shape is populated. Rows are flattened row-major; column slots are returned
// in slot order. The result shares the underlying nodes with the tree.
func (e *Element) ChildElements() []*Element {
	if e == nil {
		return nil
	}
	if len(e.Children) > 0 {
		return e.Children
	}
	if len(e.Rows) > 0 {
		var out []*Element
		for _, row := range e.Rows {
			out = append(out, row...)
		}
		return out
	}
	total := len(e.Column1Children) + len(e.Column2Children) + len(e.Column3Children)
	if total > 0 {
		out := make([]*Element, 0, total)
		out = append(out, e.Column1Children...)
		out = append(out, e.Column2Children...)
		out = append(out, e.Column3Children...)
		return out
	}
	return nil
}
