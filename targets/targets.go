// Package targets models the set of runtime environments a build must support.
//
// A Map associates an environment identifier ("chrome", "node", "ios", ...)
// with the minimum version of that environment that must be supported.
// An absent environment carries no constraint; an empty Map means no specific
// targets were given and every feature must be assumed missing.
//
// Map values are always treated as immutable: every operation that changes
// the set of environments returns a new Map.
package targets

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/liangklfang/babel-preset-env/version"
)

const (
	// Node is the identifier reserved for the server-side runtime.
	Node = "node"

	// Uglify is the legacy pseudo-environment that once requested output
	// compatible with the UglifyJS minifier. It carries no version; see
	// Map.UglifyEnabled for the values that activate it.
	Uglify = "uglify"
)

// Map maps an environment identifier to its minimum required version.
type Map map[string]string

// Parse builds a Map from a raw target descriptor.
//
// Values may be strings ("55", "10.1", "8.9.4"), integers, floating point
// numbers or json.Number; each is normalized to a full semantic version. The
// Uglify entry is kept as "true" when its value is truthy and dropped
// otherwise. The raw descriptor is not modified.
func Parse(raw map[string]any) (Map, error) {
	out := make(Map, len(raw))
	for env, value := range raw {
		if env == Uglify {
			if truthy(value) {
				out[Uglify] = "true"
			}
			continue
		}

		s, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", env, err)
		}
		v, err := version.Semverify(s)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", env, err)
		}
		out[env] = v
	}
	return out, nil
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported version value %v (%T)", value, value)
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}

// UglifyEnabled reports whether m carries a truthy Uglify entry. A value
// such as "false" or "0" leaves it disabled, matching Parse.
func (m Map) UglifyEnabled() bool {
	v, ok := m[Uglify]
	return ok && truthy(v)
}

// Has reports whether env is constrained by m.
func (m Map) Has(env string) bool {
	_, ok := m[env]
	return ok
}

// Clone returns a shallow copy of m. Cloning a nil Map yields an empty Map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for env, v := range m {
		out[env] = v
	}
	return out
}

// Without returns a copy of m with the given environments removed.
func (m Map) Without(envs ...string) Map {
	out := m.Clone()
	for _, env := range envs {
		delete(out, env)
	}
	return out
}

// Environments returns the constrained environments in sorted order.
func (m Map) Environments() []string {
	envs := make([]string, 0, len(m))
	for env := range m {
		envs = append(envs, env)
	}
	slices.Sort(envs)
	return envs
}

// OnlyEnvironment reports whether m is non-empty and env is its only key.
func (m Map) OnlyEnvironment(env string) bool {
	if len(m) == 0 {
		return false
	}
	for e := range m {
		if e != env {
			return false
		}
	}
	return true
}

// String renders m as "chrome 55, node 8.9.4" in environment order.
func (m Map) String() string {
	pretty := version.PrettifyTargets(m)
	parts := make([]string, 0, len(m))
	for _, env := range m.Environments() {
		parts = append(parts, env+" "+pretty[env])
	}
	return strings.Join(parts, ", ")
}
