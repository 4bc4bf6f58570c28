package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into encoding, behavior, display, and utility.
// The preset file (--config) is applied before flags are registered so that
// flag defaults reflect the file and CLI values still win.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing input).
func ParseFlags(cfg *Config, version string) error {
	// Preset file first: a quick scan extracts --config before the flag set
	// exists, so file values become the defaults the flags are bound to.
	if path := scanConfigArg(os.Args[1:]); path != "" {
		cfg.ConfigFile = path
		if err := ApplyPresetFile(cfg, path); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("segmaster", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var extra extraFlags

	defineEncodingFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &extra)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, cfg, &extra)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyExtraFlags(cfg, &extra)

	if extra.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "segmaster v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds boolean flags that are applied after Parse. These either
// invert a default (noAnalyze -> Analyze=false) or trigger exit (showHelp).
type extraFlags struct {
	noAnalyze   bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineEncodingFlags registers -b/--bitrate, -s/--segment-length, -w/--width, --height.
func defineEncodingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.BitrateKbps, "bitrate", cfg.BitrateKbps, "Output bitrate in kbps (required)")
	fs.IntVar(&cfg.BitrateKbps, "b", cfg.BitrateKbps, "Same as --bitrate")
	fs.IntVar(&cfg.SegmentLength, "segment-length", cfg.SegmentLength, "Segment length in seconds")
	fs.IntVar(&cfg.SegmentLength, "s", cfg.SegmentLength, "Same as --segment-length")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Output width in pixels (height auto unless given)")
	fs.IntVar(&cfg.Width, "w", cfg.Width, "Same as --width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Output height in pixels (width auto unless given)")
}

// defineBehaviorFlags registers -o/--output, dry-run, no-analyze, config.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output directory (created if absent)")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print the ffmpeg command without executing")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&n.noAnalyze, "no-analyze", false, "Skip output analysis after conversion")
	// Already consumed by scanConfigArg; registered so Parse accepts it.
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML preset file")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyExtraFlags copies post-Parse flag values into cfg.
func applyExtraFlags(cfg *Config, n *extraFlags) {
	if n.noAnalyze {
		cfg.Analyze = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Input from the single positional arg when not in
// CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input file (media file or .m3u8 playlist)")
	}
	cfg.Input = args[0]
	return nil
}

// scanConfigArg extracts the --config value from raw args before the flag
// set exists. Handles "--config path", "-config path" and "--config=path".
func scanConfigArg(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > 9 && arg[:9] == "--config=":
			return arg[9:]
		case len(arg) > 8 && arg[:8] == "-config=":
			return arg[8:]
		}
	}
	return ""
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "segmaster v" + version + " - WebRTC-compatible HLS converter"},
		{"", ""},
		{"  segmaster [OPTIONS] <input>", ""},
		{"", ""},
		{"Encoding", ""},
		{"  -b, --bitrate <kbps>", "Output bitrate in kbps (required)"},
		{"  -s, --segment-length <s>", "Segment length in seconds (default: 2)"},
		{"  -w, --width <px>", "Output width; height auto unless --height given"},
		{"  --height <px>", "Output height; width auto unless --width given"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -o, --output <dir>", "Output directory (required, created if absent)"},
		{"  -d, --dry-run", "Print the ffmpeg command without executing"},
		{"  --no-analyze", "Skip output analysis after conversion"},
		{"  --config <path>", "YAML preset file (bitrate, segment_length, ...)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (shows ffmpeg progress)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, libx264, HLS)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
