package rules

// Operator names a single comparison against one field's current value.
type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "notEquals"
	OpContains           Operator = "contains"
	OpNotContains        Operator = "notContains"
	OpStartsWith         Operator = "startsWith"
	OpEndsWith           Operator = "endsWith"
	OpGreaterThan        Operator = "greaterThan"
	OpLessThan           Operator = "lessThan"
	OpGreaterThanOrEqual Operator = "greaterThanOrEqual"
	OpLessThanOrEqual    Operator = "lessThanOrEqual"
	OpIsEmpty            Operator = "isEmpty"
	OpIsNotEmpty         Operator = "isNotEmpty"
	OpIsChecked          Operator = "isChecked"
	OpIsNotChecked       Operator = "isNotChecked"
)

// Combinator controls how a rule's conditions are combined.
type Combinator string

const (
	CombineAnd Combinator = "AND"
	CombineOr  Combinator = "OR"
)

// ActionType names a resolved-state mutation applied when a rule fires.
type ActionType string

const (
	ActionShow     ActionType = "show"
	ActionHide     ActionType = "hide"
	ActionEnable   ActionType = "enable"
	ActionDisable  ActionType = "disable"
	ActionRequire  ActionType = "require"
	ActionSetValue ActionType = "setValue"
)

// Condition compares one field's current value against a literal. Value may
// be nil for unary operators such as isEmpty.
type Condition struct {
	FieldID  string   `json:"fieldId" yaml:"fieldId"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    any      `json:"value,omitempty" yaml:"value,omitempty"`
}

// Action mutates the resolved state of one target element.
type Action struct {
	Type     ActionType `json:"type" yaml:"type"`
	TargetID string     `json:"targetId" yaml:"targetId"`
	Value    any        `json:"value,omitempty" yaml:"value,omitempty"`
}

// Rule is a named, orderable unit combining conditions and actions. Disabled
// rules are skipped entirely during evaluation.
type Rule struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	Operator   Combinator  `json:"operator" yaml:"operator"`
	Actions    []Action    `json:"actions" yaml:"actions"`
	Enabled    bool        `json:"enabled" yaml:"enabled"`
}

// Result is the flattened per-element state produced by one evaluation pass.
// It is a pure projection of (tree, rules, form data) and is never
// authoritative on its own.
type Result struct {
	Visibility map[string]bool `json:"visibility"`
	Enabled    map[string]bool `json:"enabled"`
	Required   map[string]bool `json:"required"`
	Values     map[string]any  `json:"values"`
}
