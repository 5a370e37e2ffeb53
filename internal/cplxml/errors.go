package cplxml

import (
	"fmt"
	"strings"
)

// DocumentParseError reports XML that cannot be read into a document tree.
type DocumentParseError struct {
	Path string
	Err  error
}

func (e *DocumentParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse composition playlist: %v", e.Err)
	}
	return fmt.Sprintf("parse composition playlist: %s: %v", e.Path, e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// Problem is a single schema violation. Code is the XSD validation rule
// (for example "cvc-complex-type.2.4") or one of the Code constants below.
type Problem struct {
	Path    string `json:"path,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// Problem codes for the checks made after schema validation.
const (
	// CodeRootElement marks a schema-valid document whose root is not a
	// CompositionPlaylist.
	CodeRootElement = "cpl-root-element"
	// CodeLanguageTag marks a ContentTitle language that is lexically an
	// xs:language but not a valid BCP 47 tag.
	CodeLanguageTag = "bcp47-language-tag"
)

func (p Problem) String() string {
	var b strings.Builder
	if p.Path != "" {
		b.WriteString(p.Path)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "[%s] %s", p.Code, p.Message)
	if p.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", p.Line)
	}
	return b.String()
}

// SchemaValidationError lists the schema violations found in a document.
type SchemaValidationError struct {
	Problems []Problem
}

func (e *SchemaValidationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "composition playlist schema validation failed"
	case 1:
		return "composition playlist schema validation failed: " + e.Problems[0].String()
	default:
		parts := make([]string, 0, len(e.Problems))
		for _, problem := range e.Problems {
			parts = append(parts, problem.String())
		}
		return fmt.Sprintf("composition playlist schema validation failed (%d problems): %s",
			len(e.Problems), strings.Join(parts, "; "))
	}
}
