// Command geometrize scatters candidate shapes over a canvas, reports how
// many of them are valid, and exports a heatmap of their coverage.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gogpu/geometrize"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		width      = flag.Int("width", 0, "canvas width (overrides config)")
		height     = flag.Int("height", 0, "canvas height (overrides config)")
		shapes     = flag.Int("shapes", -1, "candidate shapes per kind (overrides config)")
		seed       = flag.Uint64("seed", 0, "random seed (overrides config)")
		gamma      = flag.Float64("gamma", 0, "export gamma (overrides config)")
		output     = flag.String("output", "", "output file (overrides config)")
		depth      = flag.Int("depth", 0, "bit depth, 8 or 16 (overrides config)")
		format     = flag.String("format", "", "png, tiff or bmp (overrides config)")
		workers    = flag.Int("workers", -1, "accumulation workers, 0 for GOMAXPROCS (overrides config)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "shapes":
			cfg.Shapes = *shapes
		case "seed":
			cfg.Seed = *seed
		case "gamma":
			cfg.Output.Gamma = *gamma
		case "output":
			cfg.Output.Path = *output
		case "depth":
			cfg.Output.Depth = *depth
		case "format":
			cfg.Output.Format = *format
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fatal(err)
	}
	geometrize.SetLogger(logger)

	if err := cfg.validate(); err != nil {
		fatal(err)
	}

	rep, err := run(cfg, logger)
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	rep.print(os.Stdout)
}

// newLogger returns a slog logger backed by a charmbracelet handler.
func newLogger(level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	h := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "geometrize",
		Level:           lvl,
	})
	return slog.New(h), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "geometrize:", err)
	os.Exit(2)
}
