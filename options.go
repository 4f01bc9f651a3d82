package presetenv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/targets"
)

// Option configures a single resolution.
type Option func(*resolveConfig) error

// resolveConfig holds the normalized options of one resolution.
type resolveConfig struct {
	debug       bool
	include     []string
	exclude     []string
	loose       bool
	modules     ModuleType
	targets     targets.Map
	useBuiltIns BuiltInsMode
	useSyntax   bool
}

// WithDebug enables the one-time debug summary on the resolver's logger.
func WithDebug(debug bool) Option {
	return func(c *resolveConfig) error {
		c.debug = debug
		return nil
	}
}

// WithInclude always includes the named transforms or polyfills.
func WithInclude(names ...string) Option {
	return func(c *resolveConfig) error {
		c.include = append(c.include, names...)
		return nil
	}
}

// WithExclude never includes the named transforms or polyfills, unless they
// are also included explicitly.
func WithExclude(names ...string) Option {
	return func(c *resolveConfig) error {
		c.exclude = append(c.exclude, names...)
		return nil
	}
}

// WithLoose enables loose mode on module and syntax transforms.
func WithLoose(loose bool) Option {
	return func(c *resolveConfig) error {
		c.loose = loose
		return nil
	}
}

// WithModules selects the module format transform. Default is commonjs.
func WithModules(m ModuleType) Option {
	return func(c *resolveConfig) error {
		c.modules = m
		return nil
	}
}

// WithTargets sets the environments to support. The map is copied.
// Without targets, every transform is required.
func WithTargets(t targets.Map) Option {
	return func(c *resolveConfig) error {
		c.targets = t.Clone()
		return nil
	}
}

// WithRawTargets parses a raw target descriptor with targets.Parse.
func WithRawTargets(raw map[string]any) Option {
	return func(c *resolveConfig) error {
		t, err := targets.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: targets: %w", ErrInvalidOption, err)
		}
		c.targets = t
		return nil
	}
}

// WithUseBuiltIns sets the polyfill injection mode. Default is BuiltInsOff.
func WithUseBuiltIns(m BuiltInsMode) Option {
	return func(c *resolveConfig) error {
		c.useBuiltIns = m
		return nil
	}
}

// WithUseSyntax controls whether syntax transforms are filtered by targets.
// When false, every cataloged transform is selected. Default is true.
func WithUseSyntax(use bool) Option {
	return func(c *resolveConfig) error {
		c.useSyntax = use
		return nil
	}
}

// validate checks the configuration for logical consistency.
func (c *resolveConfig) validate() error {
	if _, ok := moduleTransformations[c.modules]; !ok && c.modules != ModulesFalse {
		return fmt.Errorf("%w: unknown modules %q", ErrInvalidOption, c.modules)
	}
	if c.useBuiltIns < BuiltInsOff || c.useBuiltIns > BuiltInsUsage {
		return fmt.Errorf("%w: unknown useBuiltIns mode %d", ErrInvalidOption, int(c.useBuiltIns))
	}
	return nil
}

// newResolveConfig applies opts over the defaults and validates the result.
func newResolveConfig(opts ...Option) (*resolveConfig, error) {
	c := &resolveConfig{
		modules:   ModulesCommonJS,
		useSyntax: true,
		targets:   targets.Map{},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver) error

// WithPluginCatalog replaces the bundled transformation catalog.
func WithPluginCatalog(c *catalog.Catalog) ResolverOption {
	return func(r *Resolver) error {
		if c == nil {
			return errors.New("plugin catalog is nil")
		}
		r.plugins = c
		return nil
	}
}

// WithBuiltInCatalog replaces the bundled polyfill catalog.
func WithBuiltInCatalog(c *catalog.Catalog) ResolverOption {
	return func(r *Resolver) error {
		if c == nil {
			return errors.New("built-in catalog is nil")
		}
		r.builtIns = c
		return nil
	}
}

// WithRegistry adds a transform registry consulted before the standard
// ones. Registries added later take precedence over earlier ones.
func WithRegistry(reg TransformRegistry) ResolverOption {
	return func(r *Resolver) error {
		if reg == nil {
			return errors.New("registry is nil")
		}
		r.extraRegistries = append([]TransformRegistry{reg}, r.extraRegistries...)
		return nil
	}
}

// WithLogger sets a structured logger for resolution diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	r, err := presetenv.NewResolver(presetenv.WithLogger(logger))
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) error {
		r.logger = l
		return nil
	}
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
