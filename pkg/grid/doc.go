// Package grid provides structural utilities for the 12-column layout model:
// per-row column-budget linting and conversion from the legacy nested-rows
// and fixed-column representations into the flat container/item shape that
// the rest of the core walks.
package grid
