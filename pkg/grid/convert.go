package grid

import (
	"github.com/goliatone/go-formcore/pkg/element"
)

// ConvertLegacy rewrites legacy child shapes into the flat container/item
// representation, recursively over the whole tree. Rows-of-columns grids
// become containers whose items keep their per-breakpoint spans, so the
// transform is lossless for any grid that already satisfies the column
// budget: items whose row sums stay within 12 columns wrap back into the
// same rows. Fixed two- and three-column layouts become containers with one
// item per slot. Elements already in the flat shape are returned unchanged,
// which makes the conversion idempotent. The element is transformed in
// place and returned for convenience.
func ConvertLegacy(e *element.Element) *element.Element {
	if e == nil {
		return nil
	}

	switch {
	case len(e.Rows) > 0:
		convertRows(e)
	case len(e.Column1Children)+len(e.Column2Children)+len(e.Column3Children) > 0:
		convertColumns(e)
	}

	for _, child := range e.ChildElements() {
		ConvertLegacy(child)
	}
	return e
}

func convertRows(e *element.Element) {
	var children []*element.Element
	for _, row := range e.Rows {
		for _, col := range row {
			col.Item = true
			if col.Cols == nil {
				col.Cols = &element.ColSpans{XS: element.GridColumns}
			}
			children = append(children, col)
		}
	}
	e.Rows = nil
	e.Children = children
	e.Container = true
	if e.Type == element.TypeGrid {
		e.Type = element.TypeGridContainer
	}
	if e.Spacing == 0 {
		e.Spacing = 2
	}
}

// convertColumns turns each fixed column slot into a full-height grid item
// holding that slot's stacked children.
func convertColumns(e *element.Element) {
	slots := [][]*element.Element{e.Column1Children, e.Column2Children, e.Column3Children}
	populated := 0
	for _, slot := range slots {
		if slot != nil {
			populated++
		}
	}
	if populated == 0 {
		return
	}

	span := element.GridColumns / populated
	var children []*element.Element
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		item := &element.Element{
			ID:       element.NewID(element.TypeGridItem),
			Type:     element.TypeGridItem,
			Item:     true,
			Cols:     &element.ColSpans{XS: element.GridColumns, MD: span},
			Children: slot,
		}
		children = append(children, item)
	}

	e.Column1Children = nil
	e.Column2Children = nil
	e.Column3Children = nil
	e.Children = children
	e.Container = true
	if e.Spacing == 0 {
		e.Spacing = 2
	}
	if e.Type == element.TypeColumns2 || e.Type == element.TypeColumns3 {
		e.Type = element.TypeGridContainer
	}
}
