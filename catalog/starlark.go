package catalog

import (
	"fmt"

	"github.com/bazelbuild/buildtools/build"

	"github.com/liangklfang/babel-preset-env/internal/buildutil"
)

// starlarkEntryFunc is the only call recognized at the top level of a
// Starlark catalog.
const starlarkEntryFunc = "support"

// ParseError is a catalog syntax or structure error with a source position.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	Wrapped  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Filename, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// ParseStarlark parses a catalog written as a sequence of Starlark calls:
//
//	support("transform-arrow-functions", chrome = "47", node = "6")
//	support(name = "es6.promise", chrome = 51)
//
// Comments and blank lines are ignored. Any other statement is an error.
func ParseStarlark(filename string, data []byte) (*Catalog, error) {
	f, err := build.ParseDefault(filename, data)
	if err != nil {
		return nil, &ParseError{
			Filename: filename,
			Message:  fmt.Sprintf("syntax error: %v", err),
			Wrapped:  err,
		}
	}

	entries := make([]Entry, 0, len(f.Stmt))
	for _, stmt := range f.Stmt {
		if _, ok := stmt.(*build.CommentBlock); ok {
			continue
		}

		start, _ := stmt.Span()
		posErr := func(format string, args ...any) error {
			return &ParseError{
				Filename: filename,
				Line:     start.Line,
				Column:   start.LineRune,
				Message:  fmt.Sprintf(format, args...),
			}
		}

		call, ok := stmt.(*build.CallExpr)
		if !ok || buildutil.FuncName(call) != starlarkEntryFunc {
			return nil, posErr("expected %s(...) call", starlarkEntryFunc)
		}

		name := buildutil.String(call, "name")
		if name == "" {
			name = buildutil.String(call, "")
		}
		if name == "" {
			return nil, posErr("%s: missing entry name", starlarkEntryFunc)
		}

		support, err := buildutil.VersionAttrs(call, "name")
		if err != nil {
			return nil, posErr("%s(%q): %v", starlarkEntryFunc, name, err)
		}
		entries = append(entries, Entry{Name: name, Support: support})
	}

	return New(entries...)
}
