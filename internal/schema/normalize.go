package schema

import (
	"fmt"
	"strings"
)

// Normalize coerces an arbitrary JSON-like value into a schema-conformant
// document. Missing fields are filled with zero values, wrong-kind fields
// are replaced with zero values and recorded as Warnings, and unknown
// fields pass through untouched. The input is never mutated.
//
// Normalize fails only when the top-level input is not an object.
func Normalize(kind Kind, input any) (Document, []Warning, error) {
	obj, ok := input.(map[string]any)
	if !ok {
		return nil, nil, &NotAnObjectError{Got: typeName(input)}
	}

	doc := make(Document, len(obj))
	for k, v := range obj {
		doc[k] = v
	}

	var warnings []Warning
	for _, f := range specFor(kind) {
		doc[f.name] = normalizeField(f, obj[f.name], f.name, &warnings)
	}

	return doc, warnings, nil
}

// normalizeField produces the schema-conformant value for one field,
// appending a Warning when the present value has the wrong kind.
func normalizeField(f fieldSpec, value any, path string, warnings *[]Warning) any {
	switch f.typ {
	case typeString:
		return normalizeString(value, path, warnings)
	case typeStringList:
		return normalizeStringList(value, path, warnings)
	case typeRecord:
		return normalizeRecord(f.fields, value, path, warnings)
	case typeRecordList:
		return normalizeRecordList(f.fields, value, path, warnings)
	}
	return value
}

func normalizeString(value any, path string, warnings *[]Warning) any {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		warn(warnings, path, fmt.Sprintf("expected string, got %s", typeName(value)))
		return ""
	}
}

func normalizeStringList(value any, path string, warnings *[]Warning) any {
	switch v := value.(type) {
	case nil:
		return make([]any, 0)
	case string:
		// Comma-delimited input is coerced rather than downgraded: the
		// editable form collects skill lists as a single string.
		parts := SplitList(v)
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			out = append(out, p)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				warn(warnings, fmt.Sprintf("%s[%d]", path, i),
					fmt.Sprintf("expected string, got %s", typeName(elem)))
				continue
			}
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		warn(warnings, path, fmt.Sprintf("expected array of strings, got %s", typeName(value)))
		return make([]any, 0)
	}
}

func normalizeRecord(fields []fieldSpec, value any, path string, warnings *[]Warning) any {
	obj, ok := value.(map[string]any)
	if value == nil {
		obj = map[string]any{}
	} else if !ok {
		warn(warnings, path, fmt.Sprintf("expected object, got %s", typeName(value)))
		obj = map[string]any{}
	}

	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	for _, f := range fields {
		out[f.name] = normalizeField(f, obj[f.name], path+"."+f.name, warnings)
	}
	return out
}

func normalizeRecordList(fields []fieldSpec, value any, path string, warnings *[]Warning) any {
	switch v := value.(type) {
	case nil:
		return make([]any, 0)
	case []any:
		out := make([]any, 0, len(v))
		for i, elem := range v {
			if _, ok := elem.(map[string]any); !ok {
				warn(warnings, fmt.Sprintf("%s[%d]", path, i),
					fmt.Sprintf("expected object, got %s", typeName(elem)))
				continue
			}
			out = append(out, normalizeRecord(fields, elem, fmt.Sprintf("%s[%d]", path, i), warnings))
		}
		return out
	default:
		warn(warnings, path, fmt.Sprintf("expected array of objects, got %s", typeName(value)))
		return make([]any, 0)
	}
}

func warn(warnings *[]Warning, field, message string) {
	*warnings = append(*warnings, Warning{Field: field, Message: message})
}

// SplitList splits a comma-delimited string into trimmed, non-empty tokens.
// Order is preserved and duplicates are kept.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
