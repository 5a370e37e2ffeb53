package cplxml

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
)

// The ST 2067-2 core constraints schema imports the ST 2067-3 CPL schema,
// which in turn pulls in the ST 433 dcmlTypes and XML signature schemas.
const rootSchema = "imf-core-constraints.xsd"

//go:embed schemas/*.xsd
var schemaFiles embed.FS

var compiledSchema = sync.OnceValues(func() (*xsd.Engine, error) {
	fsys, err := fs.Sub(schemaFiles, "schemas")
	if err != nil {
		return nil, err
	}
	engine, err := xsd.CompileFS(fsys, rootSchema)
	if err != nil {
		return nil, fmt.Errorf("compile composition playlist schemas: %w", err)
	}
	return engine, nil
})

// validateSchema checks data against the embedded schema set. Documents that
// are not well-formed XML come back as *DocumentParseError; every other
// violation is collected into a *SchemaValidationError.
func validateSchema(data []byte) error {
	engine, err := compiledSchema()
	if err != nil {
		return err
	}
	err = engine.Validate(bytes.NewReader(data))
	if err == nil {
		return nil
	}
	violations, ok := xsderrors.AsValidations(err)
	if !ok {
		return &DocumentParseError{Err: err}
	}

	problems := make([]Problem, 0, len(violations))
	for _, v := range violations {
		switch xsderrors.ErrorCode(v.Code) {
		case xsderrors.ErrXMLParse, xsderrors.ErrNoRoot:
			return &DocumentParseError{Path: shortPath(v.Path), Err: errors.New(v.Message)}
		}
		problems = append(problems, Problem{
			Path:    shortPath(v.Path),
			Code:    v.Code,
			Message: v.Message,
			Line:    v.Line,
		})
	}
	return &SchemaValidationError{Problems: problems}
}

// shortPath drops the {namespace} qualifiers from a validator instance path:
// "/{urn:a}CompositionPlaylist/{urn:a}Id" becomes "/CompositionPlaylist/Id".
func shortPath(path string) string {
	if path == "/" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(path))
	depth := 0
	for _, r := range path {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
