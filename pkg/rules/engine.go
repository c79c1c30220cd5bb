package rules

import (
	"github.com/goliatone/go-formcore/pkg/element"
)

// Evaluate resolves the per-element state for the given inputs. The pass is
// an explicit fold: every element starts from its declared defaults, then
// each enabled rule in list order overwrites the targets of its actions when
// its conditions hold. The fold is deterministic and side-effect free;
// calling it twice with the same state yields identical results.
//
// An element targeted by a show action in any enabled rule is conditional:
// it starts hidden and only the action can reveal it. Everything else is
// visible by default.
func Evaluate(state State) Result {
	result := Result{
		Visibility: make(map[string]bool),
		Enabled:    make(map[string]bool),
		Required:   make(map[string]bool),
		Values:     make(map[string]any),
	}

	element.Walk(state.Tree, func(e *element.Element) {
		result.Visibility[e.ID] = true
		result.Enabled[e.ID] = true
		result.Required[e.ID] = e.Required
	})

	for _, rule := range state.Rules {
		if !rule.Enabled {
			continue
		}
		for _, action := range rule.Actions {
			if action.Type != ActionShow {
				continue
			}
			if _, known := result.Visibility[action.TargetID]; known {
				result.Visibility[action.TargetID] = false
			}
		}
	}

	for _, rule := range state.Rules {
		if !rule.Enabled {
			continue
		}
		if !Matches(rule, state.Values) {
			continue
		}
		for _, action := range rule.Actions {
			applyAction(&result, action)
		}
	}

	return result
}

// Matches evaluates the rule's conditions against the form-data map and
// combines them with the rule's combinator. AND is the default; a rule with
// no conditions matches under AND and never matches under OR.
func Matches(rule Rule, values map[string]any) bool {
	if rule.Operator == CombineOr {
		for _, cond := range rule.Conditions {
			if EvalCondition(cond, values) {
				return true
			}
		}
		return false
	}
	for _, cond := range rule.Conditions {
		if !EvalCondition(cond, values) {
			return false
		}
	}
	return true
}

// applyAction mutates the in-progress result. Targets outside the result
// maps reference elements that are not in the tree; those writes are dropped
// so one stale rule cannot poison the pass.
func applyAction(result *Result, action Action) {
	if _, known := result.Visibility[action.TargetID]; !known {
		return
	}
	switch action.Type {
	case ActionShow:
		result.Visibility[action.TargetID] = true
	case ActionHide:
		result.Visibility[action.TargetID] = false
	case ActionEnable:
		result.Enabled[action.TargetID] = true
	case ActionDisable:
		result.Enabled[action.TargetID] = false
	case ActionRequire:
		result.Required[action.TargetID] = true
	case ActionSetValue:
		result.Values[action.TargetID] = action.Value
	}
}
