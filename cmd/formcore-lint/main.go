package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formcore/pkg/element"
	"github.com/goliatone/go-formcore/pkg/formschema"
	"github.com/goliatone/go-formcore/pkg/grid"
)

func main() {
	input := flag.String("input", "", "form document path (JSON or YAML)")
	convert := flag.Bool("convert", false, "convert legacy grids before linting and print the result")
	flag.Parse()

	if *input == "" {
		log.Fatal("usage: formcore-lint -input form.json")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read %s: %v", *input, err)
	}

	doc, err := formschema.Parse(data, *input)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	if *convert {
		grid.ConvertLegacy(doc.Form)
	}

	issues := lint(doc.Form)
	if len(issues) == 0 {
		fmt.Println("ok")
		if *convert {
			out, err := formschema.EncodeJSON(doc)
			if err != nil {
				log.Fatalf("encode: %v", err)
			}
			fmt.Println(string(out))
		}
		return
	}

	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, issue)
	}
	os.Exit(1)
}

func lint(root *element.Element) []string {
	result := element.ValidateStructure(root)
	issues := append([]string(nil), result.Errors...)

	element.Walk(root, func(e *element.Element) {
		if !element.KnownType(e.Type) {
			issues = append(issues, fmt.Sprintf("element %s has unknown type %q", e.ID, e.Type))
		}
	})

	return issues
}
