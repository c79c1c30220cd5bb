package grid

import (
	"fmt"

	"github.com/goliatone/go-formcore/pkg/element"
)

// BudgetCheck sums each child's effective span at every breakpoint and
// reports the breakpoints whose total exceeds the 12-column budget. Children
// without explicit spans fall back to their xs span and finally to the full
// row width.
func BudgetCheck(rowChildren []*element.Element) []string {
	if len(rowChildren) == 0 {
		return nil
	}
	var errs []string
	for _, bp := range element.Breakpoints {
		total := 0
		for _, child := range rowChildren {
			total += child.Cols.At(bp)
		}
		if total > element.GridColumns {
			errs = append(errs, fmt.Sprintf("row exceeds %d columns at breakpoint %s (total %d)", element.GridColumns, bp, total))
		}
	}
	return errs
}
