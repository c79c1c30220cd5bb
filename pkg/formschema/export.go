package formschema

import (
	"encoding/json"

	"github.com/goliatone/go-formcore/pkg/element"
)

// Node is the schema export shape: a strict subset of Element carrying only
// structure and field identity. Presentation-only attributes such as color,
// icon, and margins are intentionally dropped.
type Node struct {
	Type      string            `json:"type"`
	MaxWidth  string            `json:"maxWidth,omitempty"`
	Container bool              `json:"container,omitempty"`
	Spacing   int               `json:"spacing,omitempty"`
	Item      bool              `json:"item,omitempty"`
	Cols      *element.ColSpans `json:"cols,omitempty"`
	FieldType string            `json:"fieldType,omitempty"`
	Name      string            `json:"name,omitempty"`
	Children  []*Node           `json:"children,omitempty"`
}

// Export projects the element tree onto the interchange shape, recursively.
func Export(e *element.Element) *Node {
	if e == nil {
		return nil
	}
	node := &Node{
		Type:      string(e.Type),
		MaxWidth:  e.MaxWidth,
		Container: e.Container,
		Spacing:   e.Spacing,
		Item:      e.Item,
		Cols:      e.Cols.Clone(),
	}
	if e.Type.IsInput() {
		node.FieldType = string(e.Type)
		node.Name = e.ID
	}
	for _, child := range e.ChildElements() {
		node.Children = append(node.Children, Export(child))
	}
	return node
}

// ExportJSON marshals the exported projection with indentation for
// interchange with downstream renderers.
func ExportJSON(e *element.Element) ([]byte, error) {
	return json.MarshalIndent(Export(e), "", "  ")
}
