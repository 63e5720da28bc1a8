package document

import "fmt"

// NotFoundError indicates a path segment that does not exist or addresses
// a value of the wrong container kind. It signals a caller bug (a stale
// path against a document that changed shape) and is never swallowed.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// OutOfRangeError indicates an element index outside a section's bounds.
type OutOfRangeError struct {
	Path   string
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %s (length %d)", e.Index, e.Path, e.Length)
}
