// Package version implements the semantic version handling used when comparing
// target environments against feature support tables.
//
// Two shapes of version string appear:
//
//   - Target versions are full MAJOR.MINOR.PATCH semantic versions, optionally
//     carrying prerelease and build metadata. They are validated strictly.
//   - Support versions come from catalog data and are often partial ("52",
//     "10.1"). Semverify pads them to three components before comparison.
//
// Parsing and ordering are delegated to github.com/Masterminds/semver/v3.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseError represents a version parsing error.
type ParseError struct {
	Version string
	Message string
}

func (e *ParseError) Error() string {
	return "bad version " + strconv.Quote(e.Version) + ": " + e.Message
}

// parse parses a strict semantic version.
func parse(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, &ParseError{Version: s, Message: err.Error()}
	}
	return v, nil
}

// Valid reports whether s is a syntactically valid, fully specified semantic
// version such as "55.0.0" or "7.0.0-beta.1".
func Valid(s string) bool {
	_, err := semver.StrictNewVersion(s)
	return err == nil
}

// Compare compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func Compare(a, b string) (int, error) {
	va, err := parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// GreaterThan reports whether a is strictly greater than b.
func GreaterThan(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// LessThan reports whether a is strictly less than b.
func LessThan(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Semverify converts a possibly partial version into a full semantic version.
//
// A valid semantic version is returned unchanged. Otherwise the input must be
// one to three dot-separated non-negative integers; missing components are
// filled with zero, so "52" becomes "52.0.0" and "0.36" becomes "0.36.0".
// Any other shape is an error.
func Semverify(s string) (string, error) {
	s = strings.TrimSpace(s)
	if Valid(s) {
		return s, nil
	}
	if s == "" {
		return "", &ParseError{Version: s, Message: "empty version"}
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return "", &ParseError{Version: s, Message: "too many components"}
	}

	out := make([]string, 3)
	for i := range out {
		if i >= len(parts) {
			out[i] = "0"
			continue
		}
		n, err := strconv.ParseUint(parts[i], 10, 64)
		if err != nil {
			return "", &ParseError{Version: s, Message: "component " + strconv.Quote(parts[i]) + " is not a non-negative integer"}
		}
		out[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(out, "."), nil
}

// Prettify renders a semantic version in its shortest readable form:
// "55.0.0" becomes "55", "10.1.0" becomes "10.1". Prerelease and build
// metadata are dropped. Strings that are not valid versions are returned as-is.
func Prettify(s string) string {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return s
	}

	parts := []string{strconv.FormatUint(v.Major(), 10)}
	if v.Minor() != 0 || v.Patch() != 0 {
		parts = append(parts, strconv.FormatUint(v.Minor(), 10))
	}
	if v.Patch() != 0 {
		parts = append(parts, strconv.FormatUint(v.Patch(), 10))
	}
	return strings.Join(parts, ".")
}

// PrettifyTargets returns a copy of targets with every version prettified.
func PrettifyTargets(targets map[string]string) map[string]string {
	out := make(map[string]string, len(targets))
	for env, v := range targets {
		out[env] = Prettify(v)
	}
	return out
}
