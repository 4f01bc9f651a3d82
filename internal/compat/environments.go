// Package compat describes the target environments that support catalogs
// are keyed by. The resolver uses it to flag target names that no catalog
// entry can ever match.
package compat

import (
	"fmt"
	"slices"
)

// EnvironmentKind classifies a target environment.
type EnvironmentKind string

const (
	// KindBrowser is a web browser.
	KindBrowser EnvironmentKind = "browser"
	// KindServer is a server-side runtime.
	KindServer EnvironmentKind = "server"
	// KindDesktop is a desktop application shell embedding a browser engine.
	KindDesktop EnvironmentKind = "desktop"
	// KindLegacy is a pseudo-environment kept for backwards compatibility.
	KindLegacy EnvironmentKind = "legacy"
)

// Environment describes a known target environment.
type Environment struct {
	// Name is the target key (e.g., "chrome", "node").
	Name string
	// Kind classifies the environment.
	Kind EnvironmentKind
	// Description names the environment for humans.
	Description string
}

// environmentRegistry contains every environment support tables may name.
var environmentRegistry = []Environment{
	{Name: "android", Kind: KindBrowser, Description: "Android Browser"},
	{Name: "chrome", Kind: KindBrowser, Description: "Google Chrome"},
	{Name: "edge", Kind: KindBrowser, Description: "Microsoft Edge"},
	{Name: "firefox", Kind: KindBrowser, Description: "Mozilla Firefox"},
	{Name: "ie", Kind: KindBrowser, Description: "Internet Explorer"},
	{Name: "ios", Kind: KindBrowser, Description: "Safari on iOS"},
	{Name: "opera", Kind: KindBrowser, Description: "Opera"},
	{Name: "safari", Kind: KindBrowser, Description: "Apple Safari"},
	{Name: "samsung", Kind: KindBrowser, Description: "Samsung Internet"},
	{Name: "electron", Kind: KindDesktop, Description: "Electron"},
	{Name: "node", Kind: KindServer, Description: "Node.js"},
	{Name: "uglify", Kind: KindLegacy, Description: "UglifyJS output (deprecated)"},
}

// TargetWarning reports a target environment no catalog can describe.
type TargetWarning struct {
	// Environment is the unrecognized target key.
	Environment string
	// Suggestion is a known environment with a similar name, if any.
	Suggestion string
}

// String returns a human-readable warning message.
func (w *TargetWarning) String() string {
	msg := fmt.Sprintf("unknown target environment %q: every item will be required for it", w.Environment)
	if w.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", w.Suggestion)
	}
	return msg
}

// IsKnown reports whether name is a known environment.
func IsKnown(name string) bool {
	return GetEnvironment(name) != nil
}

// GetEnvironment returns the environment called name, or nil if not found.
func GetEnvironment(name string) *Environment {
	for i := range environmentRegistry {
		if environmentRegistry[i].Name == name {
			return &environmentRegistry[i]
		}
	}
	return nil
}

// CheckTarget returns a warning if name is not a known environment.
func CheckTarget(name string) *TargetWarning {
	if IsKnown(name) {
		return nil
	}
	return &TargetWarning{Environment: name, Suggestion: suggest(name)}
}

// GetAllEnvironments returns all known environments.
func GetAllEnvironments() []Environment {
	return slices.Clone(environmentRegistry)
}

// GetEnvironmentsOfKind returns the known environments of the given kind.
func GetEnvironmentsOfKind(kind EnvironmentKind) []Environment {
	var result []Environment
	for _, env := range environmentRegistry {
		if env.Kind == kind {
			result = append(result, env)
		}
	}
	return result
}

// suggest returns the known environment closest to name when it is at most
// two edits away.
func suggest(name string) string {
	best, bestDist := "", 3
	for _, env := range environmentRegistry {
		if d := editDistance(name, env.Name); d < bestDist {
			best, bestDist = env.Name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
