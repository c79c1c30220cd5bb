package formschema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcore/pkg/element"
	"github.com/goliatone/go-formcore/pkg/rules"
)

// Document bundles a form's element tree with its rule list, matching the
// interchange JSON shape.
type Document struct {
	Form  *element.Element `json:"form" yaml:"form"`
	Rules []rules.Rule     `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Store keeps parsed form documents keyed by their root element id. It is
// safe for concurrent readers when treated as immutable after construction.
type Store struct {
	documents map[string]Document
}

// LoadFS walks the provided filesystem and parses JSON/YAML form documents.
// When fsys is nil or no documents are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{documents: make(map[string]Document)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formschema: read %s: %w", path, err)
		}

		doc, err := Parse(data, path)
		if err != nil {
			return err
		}

		id := doc.Form.ID
		if _, exists := store.documents[id]; exists {
			return fmt.Errorf("formschema: duplicate form %q (file %s)", id, path)
		}
		store.documents[id] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Document returns the parsed document for the supplied form id.
func (s *Store) Document(id string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	doc, ok := s.documents[id]
	return doc, ok
}

// IDs returns the ids of every loaded form.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.documents))
	for id := range s.documents {
		out = append(out, id)
	}
	return out
}

// Empty reports whether the store holds any documents.
func (s *Store) Empty() bool {
	return s == nil || len(s.documents) == 0
}

// Parse decodes a form document, trying JSON first and YAML second, and
// sanitizes any inline icon markup carried on elements. The source string is
// only used in error messages.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("formschema: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("formschema: parse %s: invalid JSON or YAML", source)
		}
	}

	if doc.Form == nil {
		return Document{}, fmt.Errorf("formschema: file %s has no form", source)
	}
	if strings.TrimSpace(doc.Form.ID) == "" {
		return Document{}, fmt.Errorf("formschema: file %s form has no id", source)
	}

	element.Walk(doc.Form, func(e *element.Element) {
		e.Icon = sanitizeIconMarkup(e.Icon)
	})

	return doc, nil
}

// EncodeJSON marshals the document for storage or transport.
func EncodeJSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("formschema: encode: %w", err)
	}
	return data, nil
}

// EncodeYAML marshals the document as YAML.
func EncodeYAML(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("formschema: encode: %w", err)
	}
	return data, nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
