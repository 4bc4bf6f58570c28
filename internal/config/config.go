// Package config holds runtime configuration: defaults, the YAML preset
// file layer, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for a single conversion run. It is
// populated by [DefaultConfig] and then mutated by [ParseFlags] before being
// passed (by pointer) to packages that need it. All state flows through this
// struct; no package keeps run-scoped globals.
type Config struct {
	// Paths (positional input, -o output).
	Input     string
	OutputDir string

	// Encode settings.
	BitrateKbps   int // Required, kbps, must be > 0.
	SegmentLength int // Default: 2 seconds, must be > 0.
	Width         int // Optional target width; 0 = keep source dimension.
	Height        int // Optional target height; 0 = keep source dimension.

	// Fixed encoder parameters, chosen for maximum decoder compatibility
	// and minimum latency (not user-configurable).
	VideoEncoder string // Fixed: "libx264".
	Profile      string // Fixed: "baseline".
	Level        string // Fixed: "3.1".
	Preset       string // Fixed: "fast".
	Tune         string // Fixed: "zerolatency".

	// Behavior flags.
	DryRun  bool
	Analyze bool // Default: true. Cleared by --no-analyze.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Preset file (optional YAML with encode defaults).
	ConfigFile string
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before the preset file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		SegmentLength: 2,
		VideoEncoder:  "libx264",
		Profile:       "baseline",
		Level:         "3.1",
		Preset:        "fast",
		Tune:          "zerolatency",
		Analyze:       true,
		ColorMode:     ColorAuto,
	}
}

// Validate checks the per-run request for internal consistency. It runs
// before any file I/O so that bad numeric arguments fail fast. CheckOnly
// mode skips the request checks entirely.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}

	if c.Input == "" {
		return errors.New("need an input file (media file or .m3u8 playlist)")
	}
	if c.OutputDir == "" {
		return errors.New("need an output directory (--output)")
	}
	if c.BitrateKbps <= 0 {
		return fmt.Errorf("bitrate must be positive (got %d)", c.BitrateKbps)
	}
	if c.SegmentLength <= 0 {
		return fmt.Errorf("segment length must be positive (got %d)", c.SegmentLength)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must be positive (got %d)", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("height must be positive (got %d)", c.Height)
	}
	return nil
}
