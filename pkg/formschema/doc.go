// Package formschema is the interchange boundary of the core: it loads and
// encodes form documents (an element tree plus its rule list) from JSON or
// YAML, sanitizes inline icon markup on the way in, and exports the
// schema-relevant projection of a tree for downstream renderers.
package formschema
