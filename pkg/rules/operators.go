package rules

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// EvalCondition evaluates a single condition against the form-data map.
// Missing fields read as nil. Unknown operators evaluate to false so a
// malformed rule degrades instead of crashing the pass.
func EvalCondition(cond Condition, values map[string]any) bool {
	value := values[cond.FieldID]

	switch cond.Operator {
	case OpEquals:
		return strictEqual(value, cond.Value)
	case OpNotEquals:
		return !strictEqual(value, cond.Value)
	case OpContains:
		return contains(value, cond.Value)
	case OpNotContains:
		return !contains(value, cond.Value)
	case OpStartsWith:
		text, ok := value.(string)
		return ok && strings.HasPrefix(text, coerceString(cond.Value))
	case OpEndsWith:
		text, ok := value.(string)
		return ok && strings.HasSuffix(text, coerceString(cond.Value))
	case OpGreaterThan:
		return compareNumeric(value, cond.Value, func(a, b float64) bool { return a > b })
	case OpLessThan:
		return compareNumeric(value, cond.Value, func(a, b float64) bool { return a < b })
	case OpGreaterThanOrEqual:
		return compareNumeric(value, cond.Value, func(a, b float64) bool { return a >= b })
	case OpLessThanOrEqual:
		return compareNumeric(value, cond.Value, func(a, b float64) bool { return a <= b })
	case OpIsEmpty:
		return isEmpty(value)
	case OpIsNotEmpty:
		return !isEmpty(value)
	case OpIsChecked:
		return isChecked(value)
	case OpIsNotChecked:
		return !isChecked(value)
	default:
		return false
	}
}

// strictEqual compares without coercion. Numeric values of different Go
// types still compare by magnitude so that a JSON-decoded float64 matches an
// int literal of the same value.
func strictEqual(a, b any) bool {
	if na, ok := asNumber(a); ok {
		if nb, ok := asNumber(b); ok {
			return na == nb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// contains performs a substring test on textual values and an element
// membership test on lists. Anything else is vacuously false.
func contains(value, needle any) bool {
	switch v := value.(type) {
	case string:
		return strings.Contains(v, coerceString(needle))
	case []string:
		want := coerceString(needle)
		for _, entry := range v {
			if entry == want {
				return true
			}
		}
		return false
	case []any:
		for _, entry := range v {
			if strictEqual(entry, needle) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// compareNumeric coerces both sides to float64. Non-numeric input cannot
// satisfy any ordering, mirroring NaN comparison semantics: the operator
// silently fails closed rather than raising an error.
func compareNumeric(a, b any, cmp func(float64, float64) bool) bool {
	fa, ok := coerceNumber(a)
	if !ok {
		return false
	}
	fb, ok := coerceNumber(b)
	if !ok {
		return false
	}
	return cmp(fa, fb)
}

// isEmpty reports whether the value is falsy, the empty string, or an empty
// list. File handles and other opaque values count as present.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case bool:
		return !v
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		if n, ok := asNumber(value); ok {
			return n == 0
		}
		return false
	}
}

// isChecked applies true/false-like coercion: true, the string "true", and
// the number 1 count as checked.
func isChecked(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		if n, ok := asNumber(value); ok {
			return n == 1
		}
		return false
	}
}

// asNumber unwraps native numeric types without parsing strings.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// coerceNumber additionally parses numeric strings, matching the loose
// comparison semantics of the rule language.
func coerceNumber(value any) (float64, bool) {
	if n, ok := asNumber(value); ok {
		return n, true
	}
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}

func coerceString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
