package element

import (
	"strings"
	"testing"
)

func TestValidateStructureAcceptsFactoryOutput(t *testing.T) {
	t.Parallel()

	section, err := New(TypeSection)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text, err := New(TypeText)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	section.Children = append(section.Children, text)

	result := ValidateStructure(section)
	if !result.Valid || len(result.Errors) != 0 {
		t.Fatalf("expected clean result, got %+v", result)
	}
}

func TestValidateStructureFlagsMixedShapes(t *testing.T) {
	t.Parallel()

	mixed := &Element{
		ID:       "section-1",
		Type:     TypeSection,
		Children: []*Element{{ID: "a", Type: TypeText}},
		Rows:     [][]*Element{{{ID: "b", Type: TypeText}}},
	}

	result := ValidateStructure(mixed)
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "mixes child shapes") {
		t.Fatalf("expected mixed-shape finding, got %v", result.Errors)
	}
}

func TestValidateStructureFlagsColumnOverflow(t *testing.T) {
	t.Parallel()

	grid := &Element{
		ID:   "grid-1",
		Type: TypeGrid,
		Rows: [][]*Element{{
			{ID: "a", Type: TypeText, Cols: &ColSpans{XS: 8}},
			{ID: "b", Type: TypeText, Cols: &ColSpans{XS: 8}},
		}},
	}

	result := ValidateStructure(grid)
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	found := false
	for _, msg := range result.Errors {
		if strings.Contains(msg, "exceeds 12 columns") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected column overflow finding, got %v", result.Errors)
	}
}

func TestValidateStructureBudgetFallsBackToXS(t *testing.T) {
	t.Parallel()

	// md is unset on both items; each inherits xs=6 so every breakpoint
	// stays within budget.
	grid := &Element{
		ID:   "grid-1",
		Type: TypeGrid,
		Rows: [][]*Element{{
			{ID: "a", Type: TypeText, Cols: &ColSpans{XS: 6}},
			{ID: "b", Type: TypeText, Cols: &ColSpans{XS: 6}},
		}},
	}

	if result := ValidateStructure(grid); !result.Valid {
		t.Fatalf("expected valid result, got %v", result.Errors)
	}
}

func TestValidateStructureLintsLayoutStyles(t *testing.T) {
	t.Parallel()

	styled := &Element{
		ID:    "text-1",
		Type:  TypeText,
		Style: "color: red; position: absolute; top: 10px",
	}

	result := ValidateStructure(styled)
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if !strings.Contains(result.Errors[0], "position:absolute") {
		t.Fatalf("expected style lint finding, got %v", result.Errors)
	}

	benign := &Element{ID: "text-2", Type: TypeText, Style: "color: red"}
	if result := ValidateStructure(benign); !result.Valid {
		t.Fatalf("expected benign style to pass, got %v", result.Errors)
	}
}
