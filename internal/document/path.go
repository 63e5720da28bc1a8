// Package document provides generic path-addressed get/set/insert/remove
// operations over nested JSON-like documents. Every repeatable resume
// section (experience, education, projects, certifications) is a uniform
// client of the same four operations; there is no per-section dispatch.
package document

import (
	"strconv"
	"strings"
)

// Segment addresses one step into a document: either a record field key
// or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a segment addressing a record field.
func Key(name string) Segment {
	return Segment{key: name}
}

// Index returns a segment addressing an array position.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path is an ordered sequence of segments addressing a location within a
// document.
type Path []Segment

// NewPath builds a path from segments.
func NewPath(segments ...Segment) Path {
	return Path(segments)
}

// ParsePath parses a dot-separated path string such as
// "experience.0.company". Segments consisting only of digits address array
// positions; everything else addresses record fields.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	parts := strings.Split(s, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		if i, err := strconv.Atoi(part); err == nil && part == strconv.Itoa(i) && i >= 0 {
			path = append(path, Index(i))
			continue
		}
		path = append(path, Key(part))
	}
	return path
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}
