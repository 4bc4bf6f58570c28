// Package pipeline orchestrates a single conversion run: classify the
// input, flatten playlist inputs, transcode, and analyze the output.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/segmaster/internal/classify"
	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/ffmpeg"
	"github.com/backmassage/segmaster/internal/logging"
	"github.com/backmassage/segmaster/internal/planner"
	"github.com/backmassage/segmaster/internal/playlist"
	"github.com/backmassage/segmaster/internal/probe"
)

// Run executes the conversion pipeline for one input. Stages run strictly
// in sequence; the first error aborts the remaining stages and surfaces to
// the caller. The intermediate concatenation artifact, when one is created,
// is removed on every exit path.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, run ffmpeg.Runner) error {
	logRunHeader(cfg, log)

	prober := probe.New(run)

	// --- Classify input ---
	kind, err := classify.Detect(ctx, prober, cfg.Input)
	if err != nil {
		return err
	}
	if kind == classify.KindPlaylist {
		log.Info("Detected input type: playlist")
	} else {
		log.Info("Detected input type: media")
	}

	// --- Prepare output directory (idempotent) ---
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", cfg.OutputDir, err)
	}
	log.Debug(cfg.Verbose, "Output directory: %s", cfg.OutputDir)

	// --- Flatten playlist inputs into one intermediate file ---
	mediaInput := cfg.Input
	if kind == classify.KindPlaylist {
		segments, err := playlist.Parse(cfg.Input)
		if err != nil {
			return err
		}
		log.Info("Found %d segments in playlist", len(segments))

		intermediate, err := playlist.Flatten(ctx, run, log, segments, cfg.OutputDir)
		if intermediate != "" {
			defer os.Remove(intermediate)
		}
		if err != nil {
			return err
		}
		log.Success("Segments concatenated")
		mediaInput = intermediate
	}

	// --- Probe source properties (non-fatal) ---
	info, err := prober.VideoInfo(ctx, mediaInput)
	if err != nil {
		log.Warn("Could not get video info: %v", err)
	}
	logSourceInfo(cfg, log, &info)

	// --- Plan and build the transcode ---
	plan := planner.BuildPlan(cfg, &info)
	plan.InputPath = mediaInput

	args := ffmpeg.Build(cfg, plan)
	log.Debug(cfg.Verbose, "ffmpeg command: %s", strings.Join(args, " "))

	if cfg.DryRun {
		log.Info("[DRY] %s", strings.Join(args, " "))
		return nil
	}

	// --- Transcode ---
	log.Info("Converting to WebRTC-compatible HLS (%d kbps)...", cfg.BitrateKbps)
	start := time.Now()
	if _, stderr, err := run.Run(ctx, args[0], args[1:]...); err != nil {
		return &ffmpeg.EncodeError{Stderr: stderr, Err: err}
	}
	log.Success("Converted in %ds", int(time.Since(start).Seconds()))

	// --- Analyze output (diagnostic only) ---
	if cfg.Analyze {
		Analyze(ctx, cfg, log, prober, plan)
	}

	logRunSummary(cfg, log, plan)
	return nil
}

// logRunHeader prints the per-run settings block before conversion starts.
func logRunHeader(cfg *config.Config, log *logging.Logger) {
	log.Info("Input:  %s", cfg.Input)
	log.Info("Output: %s", cfg.OutputDir)
	log.Info("Bitrate: %d kbps, segment length: %ds", cfg.BitrateKbps, cfg.SegmentLength)
	if cfg.Width > 0 || cfg.Height > 0 {
		log.Info("Custom dimensions: %sx%s", dimLabel(cfg.Width), dimLabel(cfg.Height))
	}
	log.Info("")
}

// logSourceInfo prints the probed source properties and the resolved output
// dimensions.
func logSourceInfo(cfg *config.Config, log *logging.Logger, info *probe.VideoInfo) {
	src := "unknown"
	if info.Width > 0 && info.Height > 0 {
		src = fmt.Sprintf("%dx%d", info.Width, info.Height)
	}
	dur := "unknown duration"
	if info.Duration > 0 {
		dur = fmt.Sprintf("%.1fs", info.Duration)
	}
	log.Info("Source video: %s, %.1ffps, %s", src, info.FPS, dur)

	w, h := planner.ResolveDimensions(cfg.Width, cfg.Height, info.Width, info.Height)
	if cfg.Width > 0 || cfg.Height > 0 {
		log.Info("Output video: %sx%s (custom dimensions)", dimLabel(w), dimLabel(h))
	} else {
		log.Info("Output video: %sx%s (source dimensions)", dimLabel(w), dimLabel(h))
	}
}

// logRunSummary prints the closing block listing the applied settings.
func logRunSummary(cfg *config.Config, log *logging.Logger, plan *planner.EncodePlan) {
	log.Info("")
	log.Success("WebRTC-compatible HLS created in: %s", cfg.OutputDir)
	log.Info("Main playlist: %s", filepath.Base(plan.PlaylistPath))
	log.Info("Applied: baseline profile, constant %d kbps, keyframe every %ds, no B-frames, single reference, video-only",
		cfg.BitrateKbps, cfg.SegmentLength)
}

// dimLabel formats a dimension for display; zero means auto/unknown.
func dimLabel(v int) string {
	if v <= 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", v)
}
