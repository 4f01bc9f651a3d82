package presetenv

import (
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/internal/compat"
	"github.com/liangklfang/babel-preset-env/targets"
)

// uglifyDeprecation is reported whenever the legacy uglify target is seen.
const uglifyDeprecation = `the "uglify" target is deprecated; every transformation is selected while it is set`

// Resolver selects the transforms and polyfills a set of targets needs.
//
// Resolution is a pure function of the resolver's catalogs and the options
// passed to Resolve, apart from the debug summary, which a Resolver logs at
// most once. A Resolver is safe for concurrent use.
type Resolver struct {
	plugins         *catalog.Catalog
	builtIns        *catalog.Catalog
	extraRegistries []TransformRegistry
	registry        TransformRegistry
	logger          *slog.Logger

	debugLogged atomic.Bool
}

// NewResolver creates a resolver. Without options it uses the bundled
// catalogs and the standard transform registries.
func NewResolver(opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
	}

	if r.plugins == nil {
		r.plugins = catalog.Plugins()
	}
	if r.builtIns == nil {
		r.builtIns = catalog.BuiltIns()
	}

	registries := slices.Clone(r.extraRegistries)
	registries = append(registries, NewCatalogRegistry(r.plugins, KindSyntax), StandardRegistry())
	chain, err := NewRegistryChain(registries...)
	if err != nil {
		return nil, err
	}
	r.registry = chain

	return r, nil
}

// log returns the configured logger or a no-op logger.
func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.New(discardHandler{})
}

// Resolve computes the transforms and polyfills required for the
// configured targets.
//
// The steps are:
//  1. Strip the legacy uglify target, warning if it was present, and warn
//     about target environments no catalog describes.
//  2. Partition include and exclude names into transformations and
//     polyfills.
//  3. Filter the transformation catalog. Targets are ignored (everything is
//     selected) when syntax filtering is off or uglify was present.
//  4. When built-ins are enabled, filter the polyfill catalog with the
//     platform defaults for the targets.
//  5. Emit the module transform, the selected transformations and the
//     built-ins entry, in that order.
//
// Any invalid target or catalog version aborts the resolution.
func (r *Resolver) Resolve(opts ...Option) (*Result, error) {
	cfg, err := newResolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	logger := r.log()

	var warnings []string

	hasUglify := cfg.targets.UglifyEnabled()
	t := cfg.targets.Without(targets.Uglify)
	if hasUglify {
		logger.Warn(uglifyDeprecation)
		warnings = append(warnings, uglifyDeprecation)
	}
	for _, env := range t.Environments() {
		if w := compat.CheckTarget(env); w != nil {
			logger.Warn(w.String(), "environment", env)
			warnings = append(warnings, w.String())
		}
	}

	include := TransformIncludesAndExcludes(cfg.include)
	exclude := TransformIncludesAndExcludes(cfg.exclude)

	for _, name := range NewItemSet(include.All...).Intersect(NewItemSet(exclude.All...)) {
		msg := fmt.Sprintf("%q is both included and excluded; it will be included", name)
		logger.Warn(msg, "item", name)
		warnings = append(warnings, msg)
	}

	transformTargets := t
	if !cfg.useSyntax || hasUglify {
		transformTargets = targets.Map{}
	}

	transformations, err := FilterItems(r.plugins, include.Plugins, exclude.Plugins, transformTargets, nil)
	if err != nil {
		return nil, fmt.Errorf("filter transformations: %w", err)
	}

	var polyfills *ItemSet
	if cfg.useBuiltIns != BuiltInsOff {
		polyfills, err = FilterItems(r.builtIns, include.BuiltIns, exclude.BuiltIns, t, GetPlatformSpecificDefaultFor(t))
		if err != nil {
			return nil, fmt.Errorf("filter polyfills: %w", err)
		}
	}

	regenerator := transformations.Has(RegeneratorTransform)

	plugins, err := r.buildPlugins(cfg, transformations, polyfills, regenerator)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Plugins:         plugins,
		Transformations: transformations.Items(),
		Polyfills:       polyfills.Items(),
		Regenerator:     regenerator,
		Targets:         t,
		Warnings:        warnings,
	}

	if cfg.debug && r.debugLogged.CompareAndSwap(false, true) {
		r.logSummary(logger, cfg, transformTargets, result)
	}

	return result, nil
}

// buildPlugins emits the ordered plugin list: module transform, syntax
// transforms, then the built-ins entry.
func (r *Resolver) buildPlugins(cfg *resolveConfig, transformations, polyfills *ItemSet, regenerator bool) ([]PluginEntry, error) {
	plugins := make([]PluginEntry, 0, transformations.Len()+2)

	if cfg.modules != ModulesFalse {
		name := moduleTransformations[cfg.modules]
		tr, err := r.registry.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("module transform: %w", err)
		}
		plugins = append(plugins, PluginEntry{Transform: tr, Options: PluginOptions{Loose: cfg.loose}})
	}

	for name := range transformations.All() {
		tr, err := r.registry.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("transformation: %w", err)
		}
		plugins = append(plugins, PluginEntry{Transform: tr, Options: PluginOptions{Loose: cfg.loose}})
	}

	if cfg.useBuiltIns != BuiltInsOff {
		handler := UseBuiltInsEntry
		if cfg.useBuiltIns == BuiltInsUsage {
			handler = UseBuiltInsUsage
		}
		tr, err := r.registry.Lookup(handler)
		if err != nil {
			return nil, fmt.Errorf("built-ins handler: %w", err)
		}
		plugins = append(plugins, PluginEntry{
			Transform: tr,
			Options: PluginOptions{
				Polyfills:   polyfills.Items(),
				Regenerator: regenerator,
				Debug:       cfg.debug,
			},
		})
	}

	return plugins, nil
}
