package presetenv

import "github.com/liangklfang/babel-preset-env/targets"

// DefaultWebIncludes are the polyfills every browser-class target needs
// regardless of version.
var DefaultWebIncludes = []string{"web.timers", "web.immediate", "web.dom.iterable"}

// GetPlatformSpecificDefaultFor returns the default polyfill set for t, or
// nil when t targets only the server runtime.
//
// Defaults apply when t is empty (platform unknown) or when any targeted
// environment is not targets.Node.
func GetPlatformSpecificDefaultFor(t targets.Map) *ItemSet {
	if t.OnlyEnvironment(targets.Node) {
		return nil
	}
	return NewItemSet(DefaultWebIncludes...)
}
