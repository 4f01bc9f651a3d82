package presetenv

import (
	"log/slog"

	"github.com/liangklfang/babel-preset-env/targets"
)

// logSummary writes the one-time debug summary of a resolution.
func (r *Resolver) logSummary(logger *slog.Logger, cfg *resolveConfig, transformTargets targets.Map, result *Result) {
	logger.Info("preset-env: debug option enabled")
	logger.Info("using targets", "targets", result.Targets.String())

	modules := "false"
	if cfg.modules != ModulesFalse {
		modules = moduleTransformations[cfg.modules]
	}
	logger.Info("modules transform", "transform", modules)

	logger.Info("using plugins", "count", len(result.Transformations))
	for _, name := range result.Transformations {
		var attrs []any
		if support, ok := r.plugins.Lookup(name); ok && len(transformTargets) > 0 {
			// Errors were already surfaced by the filter step.
			if envs, err := RequiredBy(transformTargets, support); err == nil && len(envs) > 0 {
				attrs = append(attrs, "required_by", envs)
			}
		}
		logger.Info("  "+name, attrs...)
	}

	if cfg.useBuiltIns == BuiltInsOff {
		return
	}
	logger.Info("using polyfills", "mode", cfg.useBuiltIns.String(), "count", len(result.Polyfills))
	for _, name := range result.Polyfills {
		logger.Info("  " + name)
	}
}
