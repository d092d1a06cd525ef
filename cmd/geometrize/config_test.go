package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geometrize.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig(\"\") = %+v, want defaults", cfg)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
width = 64
height = 32
shapes = 10
seed = 99
log_level = "debug"

[output]
path = "out.tiff"
depth = 16
gamma = 2.2
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}

	if cfg.Width != 64 || cfg.Height != 32 || cfg.Shapes != 10 || cfg.Seed != 99 {
		t.Errorf("decoded config = %+v", cfg)
	}
	if cfg.Sigma != defaultConfig().Sigma {
		t.Errorf("unset sigma = %v, want default %v", cfg.Sigma, defaultConfig().Sigma)
	}
	if cfg.Output.Depth != 16 || cfg.Output.Gamma != 2.2 || cfg.Output.format() != "tiff" {
		t.Errorf("decoded output = %+v", cfg.Output)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	path := writeConfig(t, "widht = 10\n")

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig should reject unknown keys")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadConfig should fail for a missing file")
	}
}

func TestOutputConfig_Format(t *testing.T) {
	tests := []struct {
		out  OutputConfig
		want string
	}{
		{OutputConfig{Path: "a.png"}, "png"},
		{OutputConfig{Path: "a.TIF"}, "tiff"},
		{OutputConfig{Path: "a.tiff"}, "tiff"},
		{OutputConfig{Path: "a.bmp"}, "bmp"},
		{OutputConfig{Path: "a"}, "png"},
		{OutputConfig{Path: "a.png", Format: "TIFF"}, "tiff"},
	}

	for _, tt := range tests {
		if got := tt.out.format(); got != tt.want {
			t.Errorf("%+v.format() = %q, want %q", tt.out, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"negative shapes", func(c *Config) { c.Shapes = -1 }},
		{"bad depth", func(c *Config) { c.Output.Depth = 12 }},
		{"empty path", func(c *Config) { c.Output.Path = "" }},
		{"unknown format", func(c *Config) { c.Output.Format = "gif" }},
		{"16-bit bmp", func(c *Config) {
			c.Output.Path = "a.bmp"
			c.Output.Depth = 16
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			if err := cfg.validate(); !errors.Is(err, errInvalidConfig) {
				t.Errorf("validate() = %v, want errInvalidConfig", err)
			}
		})
	}
}
