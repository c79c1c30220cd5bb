package openapi

import (
	"context"
	"testing"

	"github.com/goliatone/go-formcore/pkg/element"
)

const petstoreDoc = `{
  "openapi": "3.0.0",
  "info": {"title": "Signup", "version": "1.0.0"},
  "paths": {
    "/signup": {
      "post": {
        "operationId": "createAccount",
        "summary": "Create account",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email", "plan"],
                "properties": {
                  "email": {"type": "string", "format": "email", "title": "Email Address"},
                  "website": {"type": "string", "format": "uri"},
                  "plan": {"type": "string", "enum": ["free", "pro"]},
                  "seats": {"type": "integer", "minimum": 1, "maximum": 500},
                  "newsletter": {"type": "boolean"},
                  "bio": {"type": "string", "minLength": 10, "maxLength": 400},
                  "address": {
                    "type": "object",
                    "properties": {
                      "city": {"type": "string"}
                    }
                  }
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func TestImportBuildsElementTree(t *testing.T) {
	t.Parallel()

	root, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{OperationID: "createAccount"})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if root.Type != element.TypeSection || root.Label != "Create account" {
		t.Fatalf("unexpected root %+v", root)
	}

	byID := map[string]*element.Element{}
	element.Walk(root, func(e *element.Element) { byID[e.ID] = e })

	email := byID["createAccount.email"]
	if email == nil || email.Type != element.TypeEmail {
		t.Fatalf("email field not mapped: %+v", email)
	}
	if !email.Required || email.Label != "Email Address" {
		t.Fatalf("email metadata lost: %+v", email)
	}

	if website := byID["createAccount.website"]; website == nil || website.Type != element.TypeURL {
		t.Fatalf("uri format must map to url input: %+v", website)
	}

	plan := byID["createAccount.plan"]
	if plan == nil || plan.Type != element.TypeSelect {
		t.Fatalf("enum must map to dropdown: %+v", plan)
	}
	if len(plan.Options) != 2 || plan.Options[0] != "free" {
		t.Fatalf("enum options lost: %v", plan.Options)
	}

	seats := byID["createAccount.seats"]
	if seats == nil || seats.Type != element.TypeNumber {
		t.Fatalf("integer must map to number input: %+v", seats)
	}
	if seats.Validation == nil || seats.Validation.Min == nil || *seats.Validation.Min != 1 || *seats.Validation.Max != 500 {
		t.Fatalf("numeric bounds lost: %+v", seats.Validation)
	}

	if newsletter := byID["createAccount.newsletter"]; newsletter == nil || newsletter.Type != element.TypeCheckbox {
		t.Fatalf("boolean must map to checkbox: %+v", newsletter)
	}

	bio := byID["createAccount.bio"]
	if bio == nil || bio.Validation == nil || bio.Validation.MinLength == nil || *bio.Validation.MinLength != 10 {
		t.Fatalf("length constraints lost: %+v", bio)
	}

	address := byID["createAccount.address"]
	if address == nil || address.Type != element.TypeSection || len(address.Children) != 1 {
		t.Fatalf("nested object must map to section: %+v", address)
	}
	if city := byID["createAccount.address.city"]; city == nil || city.Label != "City" {
		t.Fatalf("nested property lost: %+v", city)
	}

	if result := element.ValidateStructure(root); !result.Valid {
		t.Fatalf("imported tree violates structural invariants: %v", result.Errors)
	}
}

func TestImportUnknownOperation(t *testing.T) {
	t.Parallel()

	if _, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{OperationID: "nope"}); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestImportRunsDecorators(t *testing.T) {
	t.Parallel()

	marked := false
	dec := element.DecoratorFunc(func(root *element.Element) error {
		marked = true
		root.MaxWidth = "md"
		return nil
	})

	root, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{Decorators: []element.Decorator{dec}})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !marked || root.MaxWidth != "md" {
		t.Fatalf("decorator did not run: %+v", root)
	}
}

func TestImportRejectsEmptyPayload(t *testing.T) {
	t.Parallel()

	if _, err := Import(context.Background(), nil, ImportOptions{}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
