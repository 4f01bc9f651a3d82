// Package buildutil extracts attributes from buildtools call expressions.
//
// It backs the Starlark catalog format, where every entry is a call such as
//
//	support("es6.promise", chrome = "51", node = 6)
package buildutil

import (
	"fmt"
	"slices"

	"github.com/bazelbuild/buildtools/build"
)

// FuncName returns the function name from a CallExpr.
// Returns empty string if the call is not a simple function call
// (e.g., method calls like foo.bar()).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// String extracts a string attribute from a function call by name.
// If name is empty, returns the first positional string argument.
// Returns empty string if the attribute is not found or not a string.
func String(call *build.CallExpr, name string) string {
	if name == "" {
		if len(call.List) > 0 {
			if str, ok := call.List[0].(*build.StringExpr); ok {
				return str.Value
			}
		}
		return ""
	}

	if expr, ok := keyword(call, name); ok {
		if str, ok := expr.(*build.StringExpr); ok {
			return str.Value
		}
	}
	return ""
}

func keyword(call *build.CallExpr, name string) (build.Expr, bool) {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		if lhs, ok := assign.LHS.(*build.Ident); ok && lhs.Name == name {
			return assign.RHS, true
		}
	}
	return nil, false
}

// VersionAttrs returns every keyword argument of call except those named in
// skip, as strings. Values must be string or number literals; numbers keep
// their source spelling, so 10.10 stays "10.10".
func VersionAttrs(call *build.CallExpr, skip ...string) (map[string]string, error) {
	out := make(map[string]string)
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || slices.Contains(skip, lhs.Name) {
			continue
		}
		switch v := assign.RHS.(type) {
		case *build.StringExpr:
			out[lhs.Name] = v.Value
		case *build.LiteralExpr:
			out[lhs.Name] = v.Token
		default:
			return nil, fmt.Errorf("attribute %q: expected a string or number, got %T", lhs.Name, assign.RHS)
		}
	}
	return out, nil
}

