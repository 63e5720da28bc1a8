package schema

import (
	"embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

var (
	compiled   = make(map[Kind]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// compiledSchema loads and caches the JSON Schema for a kind.
func compiledSchema(kind Kind) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[kind]; ok {
		return s, nil
	}

	data, err := schemaFiles.ReadFile(string(kind) + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema for kind %s: %w", kind, err)
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for kind %s: %w", kind, err)
	}

	compiled[kind] = s
	return s, nil
}

// Validate checks a document against the embedded JSON Schema for kind.
// It is stricter than Normalize only in that it reports wrong-kind fields
// instead of downgrading them; a normalized document always validates.
func Validate(kind Kind, doc Document) error {
	s, err := compiledSchema(kind)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
