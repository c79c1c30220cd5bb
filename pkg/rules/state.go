package rules

import (
	"github.com/goliatone/go-formcore/pkg/element"
)

// State bundles the inputs of an evaluation pass: a read-only element tree
// snapshot, the ordered rule list, and the running form-data map keyed by
// element id. State values are passed around explicitly; the package keeps
// no hidden mutable state, so every helper returns an updated copy and the
// caller decides when to re-evaluate.
type State struct {
	Tree   *element.Element
	Rules  []Rule
	Values map[string]any
}

// NewState builds a State for the given tree with no rules and no values.
func NewState(tree *element.Element) State {
	return State{Tree: tree}
}

// WithFieldValue returns a State with the field set to value. The values map
// is copied so earlier State snapshots remain valid.
func WithFieldValue(state State, fieldID string, value any) State {
	out := state
	out.Values = make(map[string]any, len(state.Values)+1)
	for k, v := range state.Values {
		out.Values[k] = v
	}
	out.Values[fieldID] = value
	return out
}

// AddRule appends the rule to the end of the list, where it has the final
// word under last-rule-wins semantics.
func AddRule(state State, rule Rule) State {
	out := state
	out.Rules = make([]Rule, 0, len(state.Rules)+1)
	out.Rules = append(out.Rules, state.Rules...)
	out.Rules = append(out.Rules, rule)
	return out
}

// Patch carries partial updates for UpdateRule. Nil fields are left alone.
type Patch struct {
	Name       *string
	Conditions []Condition
	Operator   *Combinator
	Actions    []Action
	Enabled    *bool
}

// UpdateRule applies the patch to the rule with the given id, keeping its
// position in the list. Unknown ids leave the state unchanged.
func UpdateRule(state State, id string, patch Patch) State {
	out := state
	out.Rules = append([]Rule(nil), state.Rules...)
	for i := range out.Rules {
		if out.Rules[i].ID != id {
			continue
		}
		if patch.Name != nil {
			out.Rules[i].Name = *patch.Name
		}
		if patch.Conditions != nil {
			out.Rules[i].Conditions = append([]Condition(nil), patch.Conditions...)
		}
		if patch.Operator != nil {
			out.Rules[i].Operator = *patch.Operator
		}
		if patch.Actions != nil {
			out.Rules[i].Actions = append([]Action(nil), patch.Actions...)
		}
		if patch.Enabled != nil {
			out.Rules[i].Enabled = *patch.Enabled
		}
		break
	}
	return out
}

// DeleteRule removes the rule with the given id. Unknown ids leave the state
// unchanged.
func DeleteRule(state State, id string) State {
	out := state
	out.Rules = make([]Rule, 0, len(state.Rules))
	for _, rule := range state.Rules {
		if rule.ID == id {
			continue
		}
		out.Rules = append(out.Rules, rule)
	}
	return out
}
