// Package formcore bundles the element-tree data model, the conditional
// rules engine, the validator, and the grid/schema utilities behind a single
// import path. The heavy lifting lives in the pkg subpackages; this facade
// re-exports the types and entry points callers reach for first.
package formcore

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formcore/pkg/element"
	"github.com/goliatone/go-formcore/pkg/formschema"
	"github.com/goliatone/go-formcore/pkg/grid"
	"github.com/goliatone/go-formcore/pkg/openapi"
	"github.com/goliatone/go-formcore/pkg/rules"
	"github.com/goliatone/go-formcore/pkg/validation"
)

// Element tree types.
type Element = element.Element
type ElementType = element.Type
type ColSpans = element.ColSpans

// Rule types.
type Rule = rules.Rule
type Condition = rules.Condition
type Action = rules.Action
type EngineState = rules.State
type EvaluationResult = rules.Result

// NewElement creates a fully defaulted element of the requested type.
func NewElement(t ElementType) (*Element, error) { return element.New(t) }

// Duplicate deep-copies an element with fresh ids and a "(Copy)" label.
func Duplicate(e *Element) *Element { return element.Duplicate(e) }

// FindByID locates an element anywhere in the tree.
func FindByID(root *Element, id string) *Element { return element.FindByID(root, id) }

// ValidateStructure lints the tree's structural invariants.
func ValidateStructure(root *Element) element.StructureResult {
	return element.ValidateStructure(root)
}

// NewState builds an engine state for the given tree.
func NewState(tree *Element) EngineState { return rules.NewState(tree) }

// SetFieldValue returns a state with the field updated.
func SetFieldValue(state EngineState, fieldID string, value any) EngineState {
	return rules.WithFieldValue(state, fieldID, value)
}

// AddRule appends a rule to the state's rule list.
func AddRule(state EngineState, rule Rule) EngineState { return rules.AddRule(state, rule) }

// UpdateRule patches the rule with the given id in place.
func UpdateRule(state EngineState, id string, patch rules.Patch) EngineState {
	return rules.UpdateRule(state, id, patch)
}

// DeleteRule removes the rule with the given id.
func DeleteRule(state EngineState, id string) EngineState { return rules.DeleteRule(state, id) }

// Evaluate resolves per-element visibility, enablement, required-ness, and
// forced values for the given state.
func Evaluate(state EngineState) EvaluationResult { return rules.Evaluate(state) }

// Validate checks form data against the tree and the resolved rule state.
func Validate(state EngineState) validation.Result { return validation.Validate(state) }

// ColumnBudgetCheck lints a row's spans against the 12-column budget.
func ColumnBudgetCheck(rowChildren []*Element) []string { return grid.BudgetCheck(rowChildren) }

// ConvertLegacyGrid rewrites legacy child shapes into the flat
// container/item representation.
func ConvertLegacyGrid(e *Element) *Element { return grid.ConvertLegacy(e) }

// ExportSchema projects the tree onto the interchange schema shape as JSON.
func ExportSchema(e *Element) ([]byte, error) { return formschema.ExportJSON(e) }

// LoadDocuments walks a filesystem for JSON/YAML form documents.
func LoadDocuments(fsys fs.FS) (*formschema.Store, error) { return formschema.LoadFS(fsys) }

// ImportOpenAPI seeds an element tree from an OpenAPI request-body schema.
func ImportOpenAPI(ctx context.Context, raw []byte, opts openapi.ImportOptions) (*Element, error) {
	return openapi.Import(ctx, raw, opts)
}
