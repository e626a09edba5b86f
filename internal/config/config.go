// Package config resolves run settings from defaults, an optional YAML file, and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "entroplot.yaml"

// Config holds every tunable of a run. The zero-flag, zero-file
// configuration reproduces the fixed naming and layout conventions.
type Config struct {
	Pattern     string `mapstructure:"pattern"`
	Output      string `mapstructure:"output"`
	Title       string `mapstructure:"title"`
	XAxisTitle  string `mapstructure:"x_axis_title"`
	YAxisTitle  string `mapstructure:"y_axis_title"`
	LegendTitle string `mapstructure:"legend_title"`
	HoverMode   string `mapstructure:"hover_mode"`
	PlotlyJS    string `mapstructure:"plotly_js"`
	MetricsFile string `mapstructure:"metrics_file"`
	LogLevel    string `mapstructure:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	l := domain.DefaultLayout()
	return Config{
		Pattern:     domain.DefaultPattern,
		Output:      domain.DefaultOutput,
		Title:       l.Title,
		XAxisTitle:  l.XAxisTitle,
		YAxisTitle:  l.YAxisTitle,
		LegendTitle: l.LegendTitle,
		HoverMode:   l.HoverMode,
		PlotlyJS:    "builtin",
		LogLevel:    "warn",
	}
}

// Layout returns the chart layout described by c.
func (c Config) Layout() domain.Layout {
	return domain.Layout{
		Title:       c.Title,
		XAxisTitle:  c.XAxisTitle,
		YAxisTitle:  c.YAxisTitle,
		LegendTitle: c.LegendTitle,
		HoverMode:   c.HoverMode,
	}
}

// Load reads the YAML file at path on top of Default.
// If path is empty, DefaultFile inside dir is used when it exists.
// An explicitly requested file must exist. Unknown keys are an error.
func Load(dir, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Decode merges raw key/value settings into cfg. Keys absent from raw keep
// their current value. It is used for both the YAML file and flag overrides.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return errors.New("pattern must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	return nil
}
