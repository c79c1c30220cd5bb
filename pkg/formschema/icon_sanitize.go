package formschema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// sanitizeIconMarkup strips anything outside a small SVG vocabulary from
// inline icon markup. Plain token references (no markup) pass through
// untouched.
func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "<") {
		return trimmed
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

// iconSanitizer allows just enough SVG for a line icon: basic shapes, stroke
// and fill styling, and the accessibility attributes icon sets ship with.
// Scripts, event handlers, and references to external content never survive.
func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()

		shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon"}
		policy.AllowElements(append([]string{"svg", "g", "title"}, shapes...)...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height",
			"aria-hidden", "role",
		).OnElements("svg")

		styling := []string{"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"}
		policy.AllowAttrs(styling...).OnElements(append([]string{"svg", "g"}, shapes...)...)

		policy.AllowAttrs(
			"d", "points",
			"cx", "cy", "r", "rx", "ry",
			"x", "y", "x1", "y1", "x2", "y2",
		).OnElements(shapes...)

		iconPolicy = policy
	})
	return iconPolicy
}
