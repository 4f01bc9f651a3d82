// Package presetenv selects the syntax transformations and runtime
// polyfills a JavaScript build needs for a set of target environments.
//
// Each candidate transformation or polyfill carries a support table: the
// first version of every environment that handles the feature natively.
// A candidate is required when any target environment is older than its
// support version, or has no entry at all.
//
// # Quick Start
//
//	result, err := presetenv.Resolve(
//	    presetenv.WithTargets(targets.Map{"chrome": "55.0.0", "node": "8.9.4"}),
//	    presetenv.WithUseBuiltIns(presetenv.BuiltInsEntry),
//	)
//	for _, p := range result.Plugins {
//	    fmt.Println(p.Name, p.Options.Loose)
//	}
//
// # Overrides
//
// Names passed to WithInclude are always selected and names passed to
// WithExclude are never selected unless also included. Names that look
// like polyfills ("es6.promise", "web.timers") apply to the polyfill
// catalog; every other name applies to the transformation catalog.
//
// # Custom Catalogs
//
// The bundled catalogs can be replaced with NewResolver and
// WithPluginCatalog or WithBuiltInCatalog. Catalogs load from JSON, TOML or
// Starlark files through the catalog package.
//
// # Thread Safety
//
// All public types in this package are safe for concurrent use.
package presetenv

import "sync"

// defaultResolver is shared by the package-level Resolve, so its debug
// summary is logged once per process.
var defaultResolver = sync.OnceValues(func() (*Resolver, error) {
	return NewResolver()
})

// Resolve resolves opts against the bundled catalogs.
func Resolve(opts ...Option) (*Result, error) {
	r, err := defaultResolver()
	if err != nil {
		return nil, err
	}
	return r.Resolve(opts...)
}
