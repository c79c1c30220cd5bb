// Package element defines the recursive form-tree data model shared by the
// rules engine, validator, and schema utilities. An Element is a typed node
// (input, layout container, or grid primitive) with exactly one structural
// child shape populated at a time: the canonical `children` sequence, the
// legacy fixed column slots, the legacy rows-of-columns grid, or the flat
// container/item grid with per-breakpoint spans. Elements are exclusively
// owned by their parent, carry no back-references, and can be cloned freely.
// Presentation hints such as icon, color, and style text are opaque
// pass-through values the core never interprets.
package element
