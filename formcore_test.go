package formcore_test

import (
	"testing"

	formcore "github.com/goliatone/go-formcore"
	"github.com/goliatone/go-formcore/pkg/rules"
)

// TestContactFormFlow drives the public facade end to end: author a tree,
// attach a visibility rule, fill it in, and validate.
func TestContactFormFlow(t *testing.T) {
	t.Parallel()

	form, err := formcore.NewElement("section")
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}
	pref, err := formcore.NewElement("select")
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}
	pref.ID = "pref"
	pref.Label = "Preferred Contact"
	pref.Options = []string{"Email", "Phone"}

	email, err := formcore.NewElement("email")
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}
	email.ID = "email"
	email.Required = true

	form.Children = append(form.Children, pref, email)

	state := formcore.NewState(form)
	state = formcore.AddRule(state, formcore.Rule{
		ID:         "hide-email",
		Enabled:    true,
		Conditions: []formcore.Condition{{FieldID: "pref", Operator: rules.OpNotEquals, Value: "Email"}},
		Actions:    []formcore.Action{{Type: rules.ActionHide, TargetID: "email"}},
	})

	state = formcore.SetFieldValue(state, "pref", "Phone")
	if result := formcore.Evaluate(state); result.Visibility["email"] {
		t.Fatalf("email must be hidden when pref is Phone")
	}
	if result := formcore.Validate(state); !result.Valid {
		t.Fatalf("hidden required field must not fail validation: %v", result.Errors)
	}

	state = formcore.SetFieldValue(state, "pref", "Email")
	if result := formcore.Validate(state); result.Valid {
		t.Fatalf("visible empty required field must fail validation")
	}

	state = formcore.SetFieldValue(state, "email", "user@example.com")
	if result := formcore.Validate(state); !result.Valid {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	if _, err := formcore.ExportSchema(form); err != nil {
		t.Fatalf("ExportSchema: %v", err)
	}
}
