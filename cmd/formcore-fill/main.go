package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formcore/pkg/element"
	"github.com/goliatone/go-formcore/pkg/formschema"
	"github.com/goliatone/go-formcore/pkg/rules"
	"github.com/goliatone/go-formcore/pkg/validation"
)

func main() {
	input := flag.String("input", "", "form document path (JSON or YAML)")
	output := flag.String("output", "", "write collected values to file (stdout if empty)")
	flag.Parse()

	if *input == "" {
		log.Fatal("usage: formcore-fill -input form.json")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read %s: %v", *input, err)
	}
	doc, err := formschema.Parse(data, *input)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	state := rules.State{Tree: doc.Form, Rules: doc.Rules}
	state, err = fill(state)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		log.Fatalf("fill: %v", err)
	}

	if result := validation.Validate(state); !result.Valid {
		for id, msg := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", id, msg)
		}
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(state.Values, "", "  ")
	if err != nil {
		log.Fatalf("encode values: %v", err)
	}
	if *output != "" {
		if err := os.WriteFile(*output, encoded, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		return
	}
	fmt.Println(string(encoded))
}

// fill prompts every visible, enabled input element in document order,
// re-evaluating the rule list after each answer so earlier answers can
// reveal or hide later fields. Forced values from setValue actions are
// folded into the form data before each prompt.
func fill(state rules.State) (rules.State, error) {
	var inputs []*element.Element
	element.Walk(state.Tree, func(e *element.Element) {
		if e.Type.IsInput() {
			inputs = append(inputs, e)
		}
	})

	for _, field := range inputs {
		resolved := rules.Evaluate(state)
		for id, value := range resolved.Values {
			state = rules.WithFieldValue(state, id, value)
		}
		if !resolved.Visibility[field.ID] || !resolved.Enabled[field.ID] {
			continue
		}
		if _, forced := resolved.Values[field.ID]; forced {
			continue
		}

		value, err := prompt(field, resolved.Required[field.ID])
		if err != nil {
			return state, err
		}
		if value != nil {
			state = rules.WithFieldValue(state, field.ID, value)
		}
	}

	// One final pass so trailing setValue rules land in the output.
	resolved := rules.Evaluate(state)
	for id, value := range resolved.Values {
		state = rules.WithFieldValue(state, id, value)
	}
	return state, nil
}

func prompt(field *element.Element, required bool) (any, error) {
	message := field.Label
	if message == "" {
		message = field.ID
	}

	switch field.Type {
	case element.TypeCheckbox:
		var out bool
		err := survey.AskOne(&survey.Confirm{Message: message, Help: field.Description}, &out)
		return out, err
	case element.TypeSelect, element.TypeRadio:
		if len(field.Options) == 0 {
			return nil, nil
		}
		var out string
		err := survey.AskOne(&survey.Select{Message: message, Options: field.Options, Help: field.Description}, &out)
		return out, err
	case element.TypeTextarea:
		var out string
		err := survey.AskOne(&survey.Multiline{Message: message, Help: field.Description}, &out)
		return textValue(out), err
	case element.TypeNumber:
		var out string
		opts := []survey.AskOpt{survey.WithValidator(numberValidator(required))}
		err := survey.AskOne(&survey.Input{Message: message, Help: field.Description}, &out, opts...)
		if err != nil || out == "" {
			return nil, err
		}
		parsed, parseErr := strconv.ParseFloat(out, 64)
		if parseErr != nil {
			return out, nil
		}
		return parsed, nil
	case element.TypeFile:
		var out string
		err := survey.AskOne(&survey.Input{Message: message + " (path)", Help: field.Description}, &out)
		return textValue(out), err
	default:
		var out string
		err := survey.AskOne(&survey.Input{Message: message, Help: field.Description, Default: defaultText(field.Default)}, &out)
		return textValue(out), err
	}
}

func numberValidator(required bool) survey.Validator {
	return func(answer any) error {
		text, _ := answer.(string)
		if text == "" {
			if required {
				return errors.New("a value is required")
			}
			return nil
		}
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return errors.New("enter a number")
		}
		return nil
	}
}

// textValue maps the empty answer to nil so optional fields stay absent.
func textValue(out string) any {
	if out == "" {
		return nil
	}
	return out
}

func defaultText(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
