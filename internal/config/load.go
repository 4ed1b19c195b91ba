package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names a config file when --config is not given.
const EnvConfigPath = "SKINRENDER_CONFIG"

// MaxUpscale bounds preview.upscale; the composed entry is 305*upscale wide.
const MaxUpscale = 16

// Load builds the effective configuration: defaults, then the first config
// file found, then flag overrides. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveConfigPath picks --config, then $SKINRENDER_CONFIG, then the
// first existing file among the search locations.
func resolveConfigPath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func searchPaths() []string {
	return []string{
		"skinrender.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
}

// ConfigDir returns the per-user directory skinrender reads config from.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SkinRender")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SkinRender")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "skinrender")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "skinrender")
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelt setting does not silently keep its default. An empty file is
// not an error.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var err error
	r := c.Render
	if r.MaxSize < 0 {
		err = multierr.Append(err, fmt.Errorf("render.max_size must not be negative, got %d", r.MaxSize))
	}
	if r.DefaultSize < 0 {
		err = multierr.Append(err, fmt.Errorf("render.default_size must not be negative, got %d", r.DefaultSize))
	}
	if r.MinBrightness < 0 || r.MinBrightness > 1 {
		err = multierr.Append(err, fmt.Errorf("render.min_brightness must be within [0, 1], got %g", r.MinBrightness))
	}

	p := c.Preview
	if p.Upscale < 0 || p.Upscale > MaxUpscale {
		err = multierr.Append(err, fmt.Errorf("preview.upscale must be within [0, %d], got %d", MaxUpscale, p.Upscale))
	}
	if p.Width < 0 || p.MaxWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("preview widths must not be negative, got %d/%d", p.Width, p.MaxWidth))
	}
	return err
}
