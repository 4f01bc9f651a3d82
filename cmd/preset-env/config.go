package main

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	presetenv "github.com/liangklfang/babel-preset-env"
	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/targets"
)

const (
	configName = ".preset-env"
	envPrefix  = "PRESET_ENV"
)

// Config is the merged CLI configuration: defaults, then the config file,
// then PRESET_ENV_* environment variables, then flags.
type Config struct {
	Targets        map[string]any `mapstructure:"targets"`
	Include        []string       `mapstructure:"include"`
	Exclude        []string       `mapstructure:"exclude"`
	Loose          bool           `mapstructure:"loose"`
	Modules        string         `mapstructure:"modules"`
	UseBuiltIns    string         `mapstructure:"use_built_ins"`
	UseSyntax      bool           `mapstructure:"use_syntax"`
	Debug          bool           `mapstructure:"debug"`
	PluginCatalog  string         `mapstructure:"plugin_catalog"`
	BuiltInCatalog string         `mapstructure:"built_in_catalog"`
	Color          string         `mapstructure:"color"`
	Quiet          bool           `mapstructure:"quiet"`
}

// flagKeys maps config keys to the flag that overrides them.
var flagKeys = map[string]string{
	"include":          "include",
	"exclude":          "exclude",
	"loose":            "loose",
	"modules":          "modules",
	"use_built_ins":    "use-built-ins",
	"use_syntax":       "use-syntax",
	"debug":            "debug",
	"plugin_catalog":   "plugin-catalog",
	"built_in_catalog": "built-in-catalog",
	"color":            "color",
	"quiet":            "quiet",
}

// loadConfig reads configuration for the command whose flags are fs.
// An explicit path must exist; otherwise .preset-env.{toml,json,yaml} in
// the working directory is used when present.
func loadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("targets", map[string]any{})
	v.SetDefault("include", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("loose", false)
	v.SetDefault("modules", string(presetenv.ModulesCommonJS))
	v.SetDefault("use_built_ins", presetenv.BuiltInsOff.String())
	v.SetDefault("use_syntax", true)
	v.SetDefault("debug", false)
	v.SetDefault("plugin_catalog", "")
	v.SetDefault("built_in_catalog", "")
	v.SetDefault("color", "auto")
	v.SetDefault("quiet", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if f := fs.Lookup("target"); f != nil && f.Changed {
		flagTargets, err := fs.GetStringToString("target")
		if err != nil {
			return nil, err
		}
		merged := maps.Clone(cfg.Targets)
		if merged == nil {
			merged = make(map[string]any, len(flagTargets))
		}
		for env, value := range flagTargets {
			merged[env] = value
		}
		cfg.Targets = merged
	}

	return &cfg, nil
}

// targetMap parses the configured targets.
func (c *Config) targetMap() (targets.Map, error) {
	return targets.Parse(c.Targets)
}

// resolverOptions loads custom catalogs and installs logger.
func (c *Config) resolverOptions(logger *slog.Logger) ([]presetenv.ResolverOption, error) {
	opts := []presetenv.ResolverOption{presetenv.WithLogger(logger)}

	if c.PluginCatalog != "" {
		list, err := loadCatalog(c.PluginCatalog)
		if err != nil {
			return nil, err
		}
		opts = append(opts, presetenv.WithPluginCatalog(list))
	}
	if c.BuiltInCatalog != "" {
		list, err := loadCatalog(c.BuiltInCatalog)
		if err != nil {
			return nil, err
		}
		opts = append(opts, presetenv.WithBuiltInCatalog(list))
	}

	return opts, nil
}

// resolveOptions converts the configuration into resolution options.
func (c *Config) resolveOptions() ([]presetenv.Option, error) {
	t, err := c.targetMap()
	if err != nil {
		return nil, err
	}
	modules, err := presetenv.ParseModuleType(c.Modules)
	if err != nil {
		return nil, err
	}
	builtIns, err := presetenv.ParseBuiltInsMode(c.UseBuiltIns)
	if err != nil {
		return nil, err
	}

	return []presetenv.Option{
		presetenv.WithTargets(t),
		presetenv.WithInclude(c.Include...),
		presetenv.WithExclude(c.Exclude...),
		presetenv.WithLoose(c.Loose),
		presetenv.WithModules(modules),
		presetenv.WithUseBuiltIns(builtIns),
		presetenv.WithUseSyntax(c.UseSyntax),
		presetenv.WithDebug(c.Debug),
	}, nil
}

// loadCatalog reads a catalog file and validates its versions.
func loadCatalog(path string) (*catalog.Catalog, error) {
	list, err := catalog.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
