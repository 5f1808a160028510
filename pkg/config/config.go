// Package config holds run configuration loadable from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pyhub-apps/pdfpub/pkg/publish"
)

// Config carries run defaults that CLI flags can override.
type Config struct {
	Suffix  string    `yaml:"suffix"`
	Opacity float64   `yaml:"opacity"`
	Color   []float64 `yaml:"color"`
	Jobs    int       `yaml:"jobs"`
}

// Default returns the built-in configuration: "-pub" suffix, yellow
// marker at 0.35 opacity, sequential processing.
func Default() Config {
	return Config{
		Suffix:  publish.DefaultSuffix,
		Opacity: publish.DefaultStyle.Opacity,
		Color:   []float64{1, 1, 0},
		Jobs:    1,
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Color) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(c.Color))
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("opacity must be in [0, 1], got %v", c.Opacity)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// Style converts the configured appearance to a highlight style.
func (c Config) Style() publish.Style {
	s := publish.Style{Opacity: c.Opacity}
	copy(s.Color[:], c.Color)
	return s
}
