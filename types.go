package presetenv

import (
	"fmt"
	"strings"

	"github.com/liangklfang/babel-preset-env/targets"
)

// ModuleType names the module format transform to run, or ModulesFalse to
// leave module syntax untouched.
type ModuleType string

const (
	ModulesAMD      ModuleType = "amd"
	ModulesUMD      ModuleType = "umd"
	ModulesSystemJS ModuleType = "systemjs"
	ModulesCommonJS ModuleType = "commonjs"
	ModulesCJS      ModuleType = "cjs"

	// ModulesFalse disables module transformation.
	ModulesFalse ModuleType = "false"
)

// moduleTransformations maps each enabled ModuleType to its transform.
var moduleTransformations = map[ModuleType]string{
	ModulesAMD:      "transform-modules-amd",
	ModulesUMD:      "transform-modules-umd",
	ModulesSystemJS: "transform-modules-systemjs",
	ModulesCommonJS: "transform-modules-commonjs",
	ModulesCJS:      "transform-modules-commonjs",
}

// ParseModuleType converts a user-facing string into a ModuleType.
// "false" and "off" disable module transformation.
func ParseModuleType(s string) (ModuleType, error) {
	switch m := ModuleType(strings.ToLower(s)); m {
	case "false", "off":
		return ModulesFalse, nil
	case ModulesAMD, ModulesUMD, ModulesSystemJS, ModulesCommonJS, ModulesCJS:
		return m, nil
	default:
		return "", fmt.Errorf("%w: modules %q: expected one of amd, umd, systemjs, commonjs, cjs, false", ErrInvalidOption, s)
	}
}

// BuiltInsMode controls whether and how polyfills are injected.
type BuiltInsMode int

const (
	// BuiltInsOff disables polyfill injection (default).
	BuiltInsOff BuiltInsMode = iota

	// BuiltInsEntry replaces a single polyfill import at the program entry
	// with imports of the individual polyfills the targets need.
	BuiltInsEntry

	// BuiltInsUsage injects polyfills on demand wherever a program uses them.
	BuiltInsUsage
)

// String returns the user-facing name of the mode.
func (m BuiltInsMode) String() string {
	switch m {
	case BuiltInsOff:
		return "false"
	case BuiltInsEntry:
		return "entry"
	case BuiltInsUsage:
		return "usage"
	default:
		return fmt.Sprintf("BuiltInsMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m BuiltInsMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseBuiltInsMode converts "false"/"off"/"", "entry" or "usage" into a
// BuiltInsMode.
func ParseBuiltInsMode(s string) (BuiltInsMode, error) {
	switch strings.ToLower(s) {
	case "", "false", "off":
		return BuiltInsOff, nil
	case "entry":
		return BuiltInsEntry, nil
	case "usage":
		return BuiltInsUsage, nil
	default:
		return BuiltInsOff, fmt.Errorf("%w: useBuiltIns %q: expected false, entry or usage", ErrInvalidOption, s)
	}
}

// Kind classifies a transform.
type Kind int

const (
	// KindSyntax is a syntax transformation selected from the plugin catalog.
	KindSyntax Kind = iota

	// KindModule is a module format transformation.
	KindModule

	// KindBuiltIns is a polyfill injection mechanism.
	KindBuiltIns
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindModule:
		return "module"
	case KindBuiltIns:
		return "built-ins"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "syntax":
		*k = KindSyntax
	case "module":
		*k = KindModule
	case "built-ins":
		*k = KindBuiltIns
	default:
		return fmt.Errorf("unknown transform kind %q", text)
	}
	return nil
}

// PluginOptions is the configuration passed to one selected transform.
type PluginOptions struct {
	// Loose relaxes standards compliance of generated code. Passed through to
	// module and syntax transforms.
	Loose bool `json:"loose,omitempty"`

	// Polyfills lists the polyfills to inject. Set on the built-ins entry.
	Polyfills []string `json:"polyfills,omitempty"`

	// Regenerator tells the built-ins entry that transform-regenerator is
	// selected, so the generator runtime may need injecting.
	Regenerator bool `json:"regenerator,omitempty"`

	// Debug asks the built-ins entry to report what it injects.
	Debug bool `json:"debug,omitempty"`
}

// PluginEntry is one selected transform with its options.
type PluginEntry struct {
	Transform
	Options PluginOptions `json:"options"`
}

// Result is the outcome of one resolution.
type Result struct {
	// Plugins is the ordered list of transforms to run: the module
	// transform, then syntax transforms in catalog order, then the
	// built-ins entry.
	Plugins []PluginEntry `json:"plugins"`

	// Transformations is the selected syntax transformation set.
	Transformations []string `json:"transformations"`

	// Polyfills is the selected polyfill set. Empty when built-ins are off.
	Polyfills []string `json:"polyfills,omitempty"`

	// Regenerator reports whether transform-regenerator was selected.
	Regenerator bool `json:"regenerator"`

	// Targets is the effective target map, without legacy entries.
	Targets targets.Map `json:"targets"`

	// Warnings contains non-fatal issues such as deprecated targets.
	Warnings []string `json:"warnings,omitempty"`
}
