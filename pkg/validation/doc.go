// Package validation checks submitted form data against an element tree and
// the rules engine's resolved state. Hidden fields are never validated,
// required failures short-circuit everything else for that field, and all
// findings are per-field user-facing messages rather than error values.
package validation
