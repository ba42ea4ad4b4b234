package fractals

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// Defaults for Config.
const (
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultZoomFactor    = 1.05 // multiplicative scale per scroll tick
	DefaultTargetFPS     = 60   // frame-pacing target
	DefaultScreenshotDir = "screenshots"
)

// Usage is the one-line usage message printed on a ConfigError.
const Usage = "Usage: fractals [flags] <fractal-path> [width height]"

// Config holds everything a Viewer needs to start.
type Config struct {
	// ProgramPath is the Kage coloring program to render.
	ProgramPath string
	// Width and Height are the surface size in pixels.
	Width, Height int
	// ZoomFactor is the multiplicative scale per scroll tick.
	ZoomFactor float64
	// TargetFPS is the frame-pacing target.
	TargetFPS int
	// VSync enables vertical sync in addition to frame pacing.
	VSync bool
	// Debug prints per-frame timing to stderr and shows FPS in the overlay.
	Debug bool
	// ScriptPath, if set, is a JSON input script to run at startup.
	ScriptPath string
	// ScreenshotDir is where screenshots are written.
	ScreenshotDir string
}

// DefaultConfig returns a Config with every default applied and no program.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		ZoomFactor:    DefaultZoomFactor,
		TargetFPS:     DefaultTargetFPS,
		VSync:         true,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Surface returns the configured surface size.
func (c Config) Surface() Surface {
	return Surface{Width: c.Width, Height: c.Height}
}

// Validate reports the first invalid value as a ConfigError.
func (c Config) Validate() error {
	if c.ProgramPath == "" {
		return &ConfigError{Msg: "missing coloring program path"}
	}
	if c.Width < 2 || c.Height < 2 {
		return &ConfigError{Msg: fmt.Sprintf("invalid surface size %dx%d", c.Width, c.Height)}
	}
	if c.ZoomFactor <= 1 {
		return &ConfigError{Msg: fmt.Sprintf("invalid zoom factor %v: must be > 1", c.ZoomFactor)}
	}
	if c.TargetFPS <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("invalid target fps %d", c.TargetFPS)}
	}
	return nil
}

// ParseArgs parses the command line (without the program name). It accepts
// flags followed by exactly one or exactly three positional arguments:
// the coloring program path and an optional width and height.
func ParseArgs(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("fractals", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Float64Var(&cfg.ZoomFactor, "zoom", cfg.ZoomFactor, "scale factor per scroll tick")
	fs.IntVar(&cfg.TargetFPS, "fps", cfg.TargetFPS, "target frame rate")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "enable vertical sync")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "print frame timing to stderr")
	fs.StringVar(&cfg.ScriptPath, "script", cfg.ScriptPath, "JSON input script to run")
	fs.StringVar(&cfg.ScreenshotDir, "shots", cfg.ScreenshotDir, "screenshot directory")

	if err := fs.Parse(args); err != nil {
		return cfg, &ConfigError{Msg: err.Error()}
	}

	pos := fs.Args()
	switch len(pos) {
	case 1:
		cfg.ProgramPath = pos[0]
	case 3:
		cfg.ProgramPath = pos[0]
		cfg.Width = parseDimension(pos[1])
		cfg.Height = parseDimension(pos[2])
	default:
		return cfg, &ConfigError{Msg: fmt.Sprintf("expected 1 or 3 arguments, got %d", len(pos))}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseDimension parses a surface dimension. Anything that is not an integer
// yields 0, which Validate then rejects.
func parseDimension(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
