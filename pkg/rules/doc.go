// Package rules evaluates conditional business rules against live form input.
// A State bundles an element tree snapshot, an ordered rule list, and the
// running form-data map; Evaluate folds the rule list over the tree's
// declared defaults to produce a flattened per-element Result covering
// visibility, enablement, required-ness, and forced values.
//
// Rules apply strictly in list order and later writes overwrite earlier ones
// for the same target. There is no priority or conflict-resolution layer;
// last applicable rule wins. Malformed rules degrade instead of failing the
// pass: unknown operators evaluate to false and references to unknown ids
// are silent no-ops.
package rules
