package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the parameters of a coverage run.
type Config struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Shapes  int     `toml:"shapes"`
	Seed    uint64  `toml:"seed"`
	Sigma   float64 `toml:"sigma"`
	Workers int     `toml:"workers"`

	Output OutputConfig `toml:"output"`

	LogLevel string `toml:"log_level"`
}

// OutputConfig describes the exported heatmap image.
type OutputConfig struct {
	Path   string  `toml:"path"`
	Format string  `toml:"format"`
	Depth  int     `toml:"depth"`
	Gamma  float64 `toml:"gamma"`
}

var errInvalidConfig = errors.New("invalid config")

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Shapes:  200,
		Seed:    1,
		Sigma:   4,
		Workers: 0,
		Output: OutputConfig{
			Path:   "coverage.png",
			Format: "",
			Depth:  8,
			Gamma:  1,
		},
		LogLevel: "info",
	}
}

// loadConfig decodes the TOML file at path over the defaults.
// Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// format returns the output format, derived from the file extension when
// not set explicitly.
func (o OutputConfig) format() string {
	if o.Format != "" {
		return strings.ToLower(o.Format)
	}
	switch strings.ToLower(filepath.Ext(o.Path)) {
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	default:
		return "png"
	}
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", errInvalidConfig, c.Width, c.Height)
	case c.Shapes < 0:
		return fmt.Errorf("%w: negative shape count %d", errInvalidConfig, c.Shapes)
	case c.Output.Depth != 8 && c.Output.Depth != 16:
		return fmt.Errorf("%w: depth %d", errInvalidConfig, c.Output.Depth)
	case c.Output.Path == "":
		return fmt.Errorf("%w: empty output path", errInvalidConfig)
	}

	switch c.Output.format() {
	case "png", "tiff":
	case "bmp":
		if c.Output.Depth != 8 {
			return fmt.Errorf("%w: bmp output is 8-bit only", errInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: format %q", errInvalidConfig, c.Output.Format)
	}
	return nil
}
