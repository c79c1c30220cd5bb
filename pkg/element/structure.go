package element

import (
	"fmt"
	"strings"
)

// StructureResult aggregates structural lint findings for a tree. Findings
// are human-readable strings, never error values, so a single bad node does
// not abort the walk.
type StructureResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// styleLayoutTokens are CSS fragments that smuggle layout primitives past the
// sanctioned grid vocabulary. Layout is restricted to the grid/column model,
// so free-form style text carrying these is flagged.
var styleLayoutTokens = []string{
	"position:absolute",
	"position:fixed",
	"display:flex",
	"display:grid",
	"float:left",
	"float:right",
}

// ValidateStructure checks the mutually-exclusive-shape invariant, the
// 12-column budget at every breakpoint, and the style-text layout lint,
// recursively over the whole tree.
func ValidateStructure(root *Element) StructureResult {
	result := StructureResult{Valid: true}
	validateNode(root, &result)
	return result
}

func validateNode(e *Element, result *StructureResult) {
	if e == nil {
		return
	}

	if shapes := populatedShapes(e); len(shapes) > 1 {
		result.addf("element %s (%s) mixes child shapes: %s", e.ID, e.Type, strings.Join(shapes, ", "))
	}

	if e.Container && (len(e.Rows) > 0 || len(e.Column1Children)+len(e.Column2Children)+len(e.Column3Children) > 0) {
		result.addf("element %s (%s) is a flat grid container but carries legacy children", e.ID, e.Type)
	}

	if issues := styleLint(e); len(issues) > 0 {
		result.Errors = append(result.Errors, issues...)
		result.Valid = false
	}

	// Flat container children wrap across rows on their own, so only the
	// explicit legacy rows are held to the per-row budget here.
	for i, row := range e.Rows {
		for _, issue := range rowBudgetIssues(row, fmt.Sprintf("element %s row %d", e.ID, i)) {
			result.addf("%s", issue)
		}
	}

	for _, child := range e.ChildElements() {
		validateNode(child, result)
	}
}

func (r *StructureResult) addf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

func populatedShapes(e *Element) []string {
	var shapes []string
	if len(e.Children) > 0 {
		shapes = append(shapes, "children")
	}
	if len(e.Column1Children)+len(e.Column2Children)+len(e.Column3Children) > 0 {
		shapes = append(shapes, "columnChildren")
	}
	if len(e.Rows) > 0 {
		shapes = append(shapes, "rows")
	}
	return shapes
}

// rowBudgetIssues sums the effective span of every child at each breakpoint
// and reports breakpoints whose total exceeds the grid budget.
func rowBudgetIssues(row []*Element, location string) []string {
	if len(row) == 0 {
		return nil
	}
	var issues []string
	for _, bp := range Breakpoints {
		total := 0
		for _, child := range row {
			total += child.Cols.At(bp)
		}
		if total > GridColumns {
			issues = append(issues, fmt.Sprintf("%s exceeds %d columns at breakpoint %s (total %d)", location, GridColumns, bp, total))
		}
	}
	return issues
}

func styleLint(e *Element) []string {
	if strings.TrimSpace(e.Style) == "" {
		return nil
	}
	normalized := strings.ToLower(strings.ReplaceAll(e.Style, " ", ""))
	var issues []string
	for _, tok := range styleLayoutTokens {
		if strings.Contains(normalized, tok) {
			issues = append(issues, fmt.Sprintf("element %s (%s) uses layout primitive %q in style text; use grid columns instead", e.ID, e.Type, tok))
		}
	}
	return issues
}
