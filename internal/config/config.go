package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/segmented-pager/internal/app"
	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/atomicstack/segmented-pager/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "SEGMENTED_PAGER_WIDTH"
	envHeight     = "SEGMENTED_PAGER_HEIGHT"
	envShowFooter = "SEGMENTED_PAGER_FOOTER"
	envTrace      = "SEGMENTED_PAGER_TRACE"
	envLogFile    = "SEGMENTED_PAGER_LOG_FILE"
	envConfigFile = "SEGMENTED_PAGER_CONFIG"
	envSync       = "SEGMENTED_PAGER_SYNC"
	envGeometry   = "SEGMENTED_PAGER_GEOMETRY"
	envSpacing    = "SEGMENTED_PAGER_SPACING"
)

// DefaultSpacing is the gap between buttons in terminal cells.
const DefaultSpacing = 2

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the TOML file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("segmented-pager", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a TOML file describing style and segments")
	syncName := fs.String("sync", envOrDefault(env, envSync, ""), "selection sync source: settle or continuous")
	geometryName := fs.String("geometry", envOrDefault(env, envGeometry, ""), "indicator geometry: frame or insets")
	spacing := fs.Int("spacing", envOrInt(env, envSpacing, -1), "cells between buttons (-1 uses the file or default)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *spacing < -1 {
		return Config{}, fmt.Errorf("spacing must be >= 0, or -1 for the default (got %d)", *spacing)
	}

	file := defaultFile()
	if path := strings.TrimSpace(*configFile); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}

	if *syncName == "" {
		*syncName = file.Sync
	}
	syncMode, err := pager.ParseSyncMode(*syncName)
	if err != nil {
		return Config{}, err
	}
	if *geometryName == "" {
		*geometryName = file.Geometry
	}
	geometry, err := pager.ParseGeometryModel(*geometryName)
	if err != nil {
		return Config{}, err
	}

	style := file.Style.pagerStyle()
	if *spacing >= 0 {
		style.Spacing = float64(*spacing)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Sync:       syncMode,
			Geometry:   geometry,
			Style:      style,
			Pages:      file.pageSpecs(),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: *configFile,
		Flags: map[string]string{
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"config":   *configFile,
			"sync":     syncMode.String(),
			"geometry": geometry.String(),
			"spacing":  strconv.FormatFloat(style.Spacing, 'f', -1, 64),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects configurations the pager cannot be set up with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("dimensions must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height))
	}
	if len(cfg.App.Pages) == 0 {
		errs = append(errs, pager.ErrNoSegments)
	}
	for i, page := range cfg.App.Pages {
		if strings.TrimSpace(page.Label) == "" {
			errs = append(errs, fmt.Errorf("segment %d has no label", i+1))
		}
	}
	if cfg.App.Style.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing must be >= 0 (got %g)", cfg.App.Style.Spacing))
	}
	if cfg.App.Style.FontSize < 0 {
		errs = append(errs, fmt.Errorf("font size must be >= 0 (got %g)", cfg.App.Style.FontSize))
	}
	if in := cfg.App.Style.Insets; in.Left < 0 || in.Right < 0 || in.Top < 0 || in.Bottom < 0 {
		errs = append(errs, fmt.Errorf("insets must be >= 0 (got %+v)", in))
	}
	return errors.Join(errs...)
}

// pageSpecs converts file segments to UI pages.
func (f File) pageSpecs() []ui.PageSpec {
	specs := make([]ui.PageSpec, len(f.Segments))
	for i, seg := range f.Segments {
		specs[i] = ui.PageSpec{Label: seg.Label, Color: seg.Color, Text: seg.Text}
	}
	return specs
}
