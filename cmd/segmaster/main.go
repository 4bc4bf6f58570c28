// Command segmaster is the CLI entrypoint for the WebRTC-compatible HLS
// converter.
//
// It parses flags, validates the conversion request, and either runs system
// diagnostics (--check) or the conversion pipeline: classify the input,
// flatten playlist inputs, transcode to segmented HLS, and analyze the
// generated output.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/segmaster/internal/check"
	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/display"
	"github.com/backmassage/segmaster/internal/ffmpeg"
	"github.com/backmassage/segmaster/internal/logging"
	"github.com/backmassage/segmaster/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. Flag and validation errors are reported before
	// any file I/O happens, so a bad request never touches the disk.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; stage progress goes through log from here.
	display.PrintBanner()
	log.Info("=== segmaster v%s (%s) ===", version, commit)

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// Fail fast if ffmpeg/ffprobe or the libx264 encoder are unavailable.
	// A dry run only prints the command, so it skips the tool check.
	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			return 1
		}
	}

	// Phase 3: Run the pipeline. Every error surfaces here exactly once.
	if err := pipeline.Run(context.Background(), &cfg, log, ffmpeg.NewRunner(cfg.Verbose)); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		return 1
	}
	return 0
}
