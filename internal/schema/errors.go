package schema

import (
	"fmt"
	"strings"
)

// NotAnObjectError indicates the top-level input was not record-shaped.
type NotAnObjectError struct {
	Got string
}

func (e *NotAnObjectError) Error() string {
	return fmt.Sprintf("document is not a JSON object (got %s)", e.Got)
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Kind   Kind
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Kind))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// typeName describes a Go value the way a JSON consumer would see it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
