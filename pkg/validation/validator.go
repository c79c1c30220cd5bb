package validation

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-formcore/pkg/element"
	"github.com/goliatone/go-formcore/pkg/rules"
)

// Result aggregates field-level validation outcomes. Errors is keyed by
// element id; Valid is true iff no element produced an error.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validate runs a fresh rule evaluation and checks every visible input
// element of the tree against the form-data map. Elements hidden by the
// resolved state are exempt. Optional fields with no value are skipped
// entirely.
func Validate(state rules.State) Result {
	resolved := rules.Evaluate(state)
	result := Result{Valid: true, Errors: make(map[string]string)}

	element.Walk(state.Tree, func(e *element.Element) {
		if !e.Type.IsInput() {
			return
		}
		if !resolved.Visibility[e.ID] {
			return
		}
		value := state.Values[e.ID]
		if msg := validateField(e, value, resolved.Required[e.ID]); msg != "" {
			result.Errors[e.ID] = msg
			result.Valid = false
		}
	})

	return result
}

func validateField(e *element.Element, value any, required bool) string {
	if valueAbsent(value) {
		if required {
			return fmt.Sprintf("%s is required", fieldLabel(e))
		}
		return ""
	}

	if msg := builtinCheck(e, value); msg != "" {
		return msg
	}
	return bundleCheck(e, value)
}

// bundleCheck applies the element's constraint bundle in fixed order,
// stopping at the first failure: minLength, maxLength, pattern, min, max,
// custom predicate. A custom message on the bundle replaces every generated
// default.
func bundleCheck(e *element.Element, value any) string {
	v := e.Validation
	if v == nil {
		return ""
	}
	label := fieldLabel(e)
	text := stringValue(value)

	if v.MinLength != nil && len([]rune(text)) < *v.MinLength {
		return messageOr(v, "%s must be at least %d characters", label, *v.MinLength)
	}
	if v.MaxLength != nil && len([]rune(text)) > *v.MaxLength {
		return messageOr(v, "%s must be at most %d characters", label, *v.MaxLength)
	}
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err != nil || !re.MatchString(text) {
			return messageOr(v, "%s has an invalid format", label)
		}
	}
	if v.Min != nil {
		if num, ok := numericValue(value); !ok || num < *v.Min {
			return messageOr(v, "%s must be at least %v", label, *v.Min)
		}
	}
	if v.Max != nil {
		if num, ok := numericValue(value); !ok || num > *v.Max {
			return messageOr(v, "%s must be at most %v", label, *v.Max)
		}
	}
	if v.Custom != nil && !v.Custom(value) {
		return messageOr(v, "%s is invalid", label)
	}
	return ""
}

func messageOr(v *element.Validation, format string, args ...any) string {
	if v.Message != "" {
		return v.Message
	}
	return fmt.Sprintf(format, args...)
}

func fieldLabel(e *element.Element) string {
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}
