package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/element"
)

func testTree() *element.Element {
	return &element.Element{
		ID:   "form",
		Type: element.TypeSection,
		Children: []*element.Element{
			{ID: "pref", Type: element.TypeSelect, Label: "Preferred Contact", Options: []string{"Email", "Phone"}},
			{ID: "email", Type: element.TypeEmail, Label: "Email Address", Required: true},
			{ID: "phone", Type: element.TypePhone, Label: "Phone Number"},
		},
	}
}

func TestEvaluateDefaults(t *testing.T) {
	t.Parallel()

	result := Evaluate(NewState(testTree()))

	if !result.Visibility["email"] || !result.Enabled["email"] {
		t.Fatalf("expected defaults visible and enabled, got %+v", result)
	}
	if !result.Required["email"] {
		t.Fatalf("expected required default from the element, got %+v", result.Required)
	}
	if result.Required["phone"] {
		t.Fatalf("expected phone not required by default")
	}
	if len(result.Values) != 0 {
		t.Fatalf("expected no forced values, got %v", result.Values)
	}
}

func TestEvaluateLastRuleWins(t *testing.T) {
	t.Parallel()

	show := Rule{
		ID:         "r-show",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpEquals, Value: "Email"}},
		Actions:    []Action{{Type: ActionShow, TargetID: "email"}},
	}
	hide := Rule{
		ID:         "r-hide",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpEquals, Value: "Email"}},
		Actions:    []Action{{Type: ActionHide, TargetID: "email"}},
	}

	state := NewState(testTree())
	state = WithFieldValue(state, "pref", "Email")

	forward := state
	forward.Rules = []Rule{show, hide}
	if result := Evaluate(forward); result.Visibility["email"] {
		t.Fatalf("expected the later hide rule to win")
	}

	reversed := state
	reversed.Rules = []Rule{hide, show}
	if result := Evaluate(reversed); !result.Visibility["email"] {
		t.Fatalf("expected the later show rule to win after swapping order")
	}
}

func TestEvaluateSkipsDisabledRules(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	state.Rules = []Rule{{
		ID:         "r-hide",
		Enabled:    false,
		Conditions: []Condition{{FieldID: "email", Operator: OpIsEmpty}},
		Actions:    []Action{{Type: ActionHide, TargetID: "email"}},
	}}

	if result := Evaluate(state); !result.Visibility["email"] {
		t.Fatalf("disabled rule must not fire")
	}
}

func TestEvaluateCombinators(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	state = WithFieldValue(state, "pref", "Email")

	and := Rule{
		ID:      "r-and",
		Enabled: true,
		Conditions: []Condition{
			{FieldID: "pref", Operator: OpEquals, Value: "Email"},
			{FieldID: "email", Operator: OpIsNotEmpty},
		},
		Actions: []Action{{Type: ActionHide, TargetID: "phone"}},
	}
	state.Rules = []Rule{and}
	if result := Evaluate(state); !result.Visibility["phone"] {
		t.Fatalf("AND rule with one false condition must not fire")
	}

	or := and
	or.ID = "r-or"
	or.Operator = CombineOr
	state.Rules = []Rule{or}
	if result := Evaluate(state); result.Visibility["phone"] {
		t.Fatalf("OR rule with one true condition must fire")
	}
}

func TestEvaluateSetValueAndRequire(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	state = WithFieldValue(state, "pref", "Phone")
	state.Rules = []Rule{{
		ID:         "r-phone",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpEquals, Value: "Phone"}},
		Actions: []Action{
			{Type: ActionRequire, TargetID: "phone"},
			{Type: ActionSetValue, TargetID: "email", Value: "n/a"},
		},
	}}

	result := Evaluate(state)
	if !result.Required["phone"] {
		t.Fatalf("expected require action to apply")
	}
	if got := result.Values["email"]; got != "n/a" {
		t.Fatalf("expected forced value, got %v", got)
	}
}

func TestEvaluateIgnoresUnknownTargets(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	state.Rules = []Rule{{
		ID:      "r-stale",
		Enabled: true,
		Actions: []Action{{Type: ActionHide, TargetID: "deleted-field"}},
	}}

	result := Evaluate(state)
	if _, ok := result.Visibility["deleted-field"]; ok {
		t.Fatalf("unknown target must stay out of the result")
	}
	if !result.Visibility["email"] {
		t.Fatalf("stale rule must not affect other elements")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	state = WithFieldValue(state, "pref", "Email")
	state.Rules = []Rule{{
		ID:         "r-show",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpEquals, Value: "Email"}},
		Actions:    []Action{{Type: ActionShow, TargetID: "email"}, {Type: ActionSetValue, TargetID: "phone", Value: "000"}},
	}}

	first := Evaluate(state)
	second := Evaluate(state)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated evaluation differed (-first +second):\n%s", diff)
	}
}

func TestEvaluateShowTargetsDefaultHidden(t *testing.T) {
	t.Parallel()

	// A lone show rule makes its target conditional: the element stays
	// hidden until the rule fires, with no hide counterpart needed.
	show := Rule{
		ID:         "show-email",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpEquals, Value: "Email"}},
		Actions:    []Action{{Type: ActionShow, TargetID: "email"}},
	}

	state := NewState(testTree())
	state.Rules = []Rule{show}

	phone := WithFieldValue(state, "pref", "Phone")
	result := Evaluate(phone)
	if result.Visibility["email"] {
		t.Fatalf("email must stay hidden while its show rule does not fire")
	}
	if !result.Visibility["phone"] || !result.Visibility["pref"] {
		t.Fatalf("untargeted elements keep their visible default, got %+v", result.Visibility)
	}

	email := WithFieldValue(state, "pref", "Email")
	if result := Evaluate(email); !result.Visibility["email"] {
		t.Fatalf("email must be visible once the show rule fires")
	}

	off := show
	off.Enabled = false
	disabled := WithFieldValue(state, "pref", "Phone")
	disabled.Rules = []Rule{off}
	if result := Evaluate(disabled); !result.Visibility["email"] {
		t.Fatalf("a disabled show rule must not make its target conditional")
	}
}

func TestVisibilityScenario(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	state.Rules = []Rule{{
		ID:         "show-email",
		Name:       "show-email",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpEquals, Value: "Email"}},
		Actions:    []Action{{Type: ActionShow, TargetID: "email"}},
	}, {
		ID:         "hide-email",
		Enabled:    true,
		Conditions: []Condition{{FieldID: "pref", Operator: OpNotEquals, Value: "Email"}},
		Actions:    []Action{{Type: ActionHide, TargetID: "email"}},
	}}

	phone := WithFieldValue(state, "pref", "Phone")
	if result := Evaluate(phone); result.Visibility["email"] {
		t.Fatalf("email must be hidden when pref is Phone")
	}

	email := WithFieldValue(state, "pref", "Email")
	if result := Evaluate(email); !result.Visibility["email"] {
		t.Fatalf("email must be visible when pref is Email")
	}
}

func TestStateMutationHelpers(t *testing.T) {
	t.Parallel()

	state := NewState(testTree())
	rule := Rule{ID: "r1", Name: "first", Enabled: true}
	state = AddRule(state, rule)
	if len(state.Rules) != 1 {
		t.Fatalf("expected one rule, got %d", len(state.Rules))
	}

	name := "renamed"
	enabled := false
	updated := UpdateRule(state, "r1", Patch{Name: &name, Enabled: &enabled})
	if updated.Rules[0].Name != "renamed" || updated.Rules[0].Enabled {
		t.Fatalf("patch not applied: %+v", updated.Rules[0])
	}
	if state.Rules[0].Name != "first" {
		t.Fatalf("UpdateRule mutated the original state")
	}

	if deleted := DeleteRule(updated, "r1"); len(deleted.Rules) != 0 {
		t.Fatalf("expected rule removed, got %v", deleted.Rules)
	}
	if missing := DeleteRule(updated, "nope"); len(missing.Rules) != 1 {
		t.Fatalf("delete of unknown id must be a no-op")
	}
}
