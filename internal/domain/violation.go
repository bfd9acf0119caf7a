package domain

import (
	"fmt"
	"strings"
)

// PathSegment is one step in the path from a document's root to an
// offending node: either a mapping key or a sequence index.
type PathSegment struct {
	Key     string `json:"key,omitempty"`
	Index   int    `json:"index,omitempty"`
	IsIndex bool   `json:"is_index,omitempty"`
}

// KeySegment returns a segment addressing a mapping key.
func KeySegment(key string) PathSegment {
	return PathSegment{Key: key}
}

// IndexSegment returns a segment addressing a sequence element.
func IndexSegment(i int) PathSegment {
	return PathSegment{Index: i, IsIndex: true}
}

func (s PathSegment) String() string {
	if s.IsIndex {
		return fmt.Sprintf("%d", s.Index)
	}
	return s.Key
}

// Violation is a single point of disagreement between a document and a
// schema: the path to the offending node and a human-readable message.
type Violation struct {
	Path    []PathSegment `json:"path"`
	Message string        `json:"message"`
}

// FormatPath renders a violation path as an arrow-joined sequence,
// e.g. "recipes -> build -> run". An empty path addresses the document
// root and renders as an explicit marker instead of an empty string.
func FormatPath(path []PathSegment) string {
	if len(path) == 0 {
		return "document root"
	}
	parts := make([]string, len(path))
	for i, seg := range path {
		parts[i] = seg.String()
	}
	return strings.Join(parts, " -> ")
}

// FormatViolation renders a violation as "<message> (at <path>)".
func FormatViolation(v Violation) string {
	return fmt.Sprintf("%s (at %s)", v.Message, FormatPath(v.Path))
}
