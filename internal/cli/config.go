package cli

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/pipeline"
	"github.com/topoviz/topoviz/pkg/topo"
)

// Config holds persistent defaults loaded from the TOML config file.
// Command-line flags override any value set here.
type Config struct {
	// Ignore extends the built-in infrastructure channel denylist.
	Ignore []string `toml:"ignore"`

	// Select restricts graphing to the named categories
	// (topics, services, actions). Empty selects all.
	Select []string `toml:"select"`

	// IncludeHidden graphs hidden nodes and channels by default.
	IncludeHidden bool `toml:"include_hidden"`

	// ShowTypes appends channel types to connection labels by default.
	ShowTypes bool `toml:"show_types"`

	// ShowUnconnected renders one-sided channels by default.
	ShowUnconnected bool `toml:"show_unconnected"`

	// Colors overrides the category palette.
	Colors ColorConfig `toml:"colors"`

	// CacheDir overrides the render artifact cache location.
	CacheDir string `toml:"cache_dir"`
}

// ColorConfig holds per-category Graphviz color names.
type ColorConfig struct {
	Topics   string `toml:"topics"`
	Services string `toml:"services"`
	Actions  string `toml:"actions"`
}

// colors merges the config palette over the defaults.
func (c ColorConfig) colors() topo.Colors {
	out := topo.DefaultColors
	if c.Topics != "" {
		out.Topics = c.Topics
	}
	if c.Services != "" {
		out.Services = c.Services
	}
	if c.Actions != "" {
		out.Actions = c.Actions
	}
	return out
}

// loadConfig reads the config file at path. When path is empty the
// default location is used and a missing file yields an empty config;
// an explicitly named file must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// configKey is the context key for the loaded config.
const configKey ctxKey = 1

// withConfig returns a new context with the config attached.
func withConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, or an empty config
// if none was loaded.
func configFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return &Config{}
}

// passFlags holds the flags shared by every command that runs a
// rendering pass.
type passFlags struct {
	includeHidden   bool
	showTypes       bool
	showUnconnected bool
	selects         []string
	ignore          []string
}

// addPassFlags registers the shared pass flags on cmd.
func addPassFlags(cmd *cobra.Command, f *passFlags) {
	cmd.Flags().BoolVarP(&f.includeHidden, "all", "a", false, "include hidden nodes and channels")
	cmd.Flags().BoolVarP(&f.showTypes, "types", "t", false, "append channel types to connection labels")
	cmd.Flags().BoolVarP(&f.showUnconnected, "unconnected", "u", false, "render channels missing a source or destination")
	cmd.Flags().StringSliceVar(&f.selects, "select", nil, "categories to graph: topics, services, actions (default all)")
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "additional channel names to ignore")
}

// options merges config file defaults with the flags that were
// explicitly set on the command line. Flags win.
func (f *passFlags) options(cmd *cobra.Command, cfg *Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		IncludeHidden:   cfg.IncludeHidden,
		ShowTypes:       cfg.ShowTypes,
		ShowUnconnected: cfg.ShowUnconnected,
		ExtraIgnore:     cfg.Ignore,
		Colors:          cfg.Colors.colors(),
		Logger:          loggerFromContext(cmd.Context()),
	}

	if cmd.Flags().Changed("all") {
		opts.IncludeHidden = f.includeHidden
	}
	if cmd.Flags().Changed("types") {
		opts.ShowTypes = f.showTypes
	}
	if cmd.Flags().Changed("unconnected") {
		opts.ShowUnconnected = f.showUnconnected
	}
	if len(f.ignore) > 0 {
		opts.ExtraIgnore = append(append([]string{}, cfg.Ignore...), f.ignore...)
	}

	names := cfg.Select
	if cmd.Flags().Changed("select") {
		names = f.selects
	}
	cats, err := pipeline.ParseCategories(names)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts.Categories = cats

	return opts, nil
}

// artifactCacheDir resolves the cache directory, preferring the config
// override.
func artifactCacheDir(cfg *Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	return cacheDir()
}
