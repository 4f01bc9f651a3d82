package presetenv

import "regexp"

// builtInPattern matches polyfill names such as "es6.promise",
// "es2017.object.values" or "web.timers".
var builtInPattern = regexp.MustCompile(`^(?:es\d+|web)\.`)

// IncludesAndExcludes is a list of user-supplied item names split into
// transformation names and polyfill names.
type IncludesAndExcludes struct {
	// All is the input, unpartitioned.
	All []string

	// Plugins holds the transformation names.
	Plugins *ItemSet

	// BuiltIns holds the polyfill names.
	BuiltIns *ItemSet
}

// IsBuiltIn reports whether name follows the polyfill naming convention.
func IsBuiltIn(name string) bool {
	return builtInPattern.MatchString(name)
}

// TransformIncludesAndExcludes partitions names into polyfills (names
// starting with "es<digits>." or "web.") and transformations (everything
// else). No name lands in both subsets.
func TransformIncludesAndExcludes(names []string) IncludesAndExcludes {
	result := IncludesAndExcludes{
		All:      names,
		Plugins:  NewItemSet(),
		BuiltIns: NewItemSet(),
	}
	for _, name := range names {
		if IsBuiltIn(name) {
			result.BuiltIns.Add(name)
		} else {
			result.Plugins.Add(name)
		}
	}
	return result
}
