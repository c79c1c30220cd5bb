package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcore/pkg/element"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+()\- ]+$`)
)

// builtinCheck applies the per-type format checks. Only textual values are
// held to a format; file handles and other opaque values pass on presence.
func builtinCheck(e *element.Element, value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}
	switch e.Type {
	case element.TypeEmail:
		if !emailPattern.MatchString(text) {
			return fmt.Sprintf("%s must be a valid email address", fieldLabel(e))
		}
	case element.TypeURL:
		if !wellFormedURL(text) {
			return fmt.Sprintf("%s must be a valid URL", fieldLabel(e))
		}
	case element.TypePhone:
		if !phonePattern.MatchString(text) {
			return fmt.Sprintf("%s must be a valid phone number", fieldLabel(e))
		}
	}
	return ""
}

func wellFormedURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// valueAbsent reports whether the field holds no usable value: nil, the
// empty string, or an empty list. Booleans and numbers always count as
// present, as do opaque values such as file handles.
func valueAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
