// Package planner computes the encode plan for a single conversion: GOP
// size, scale filter, resolved output dimensions, and output paths.
package planner

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/probe"
)

// EncodePlan holds everything the argument builder needs for one transcode.
// InputPath is filled in by the pipeline once the media input is resolved
// (the original file, or the flattened intermediate for playlist inputs).
type EncodePlan struct {
	InputPath      string
	OutputDir      string
	PlaylistPath   string // <out>/index.m3u8
	SegmentPattern string // <out>/index_%03d.ts

	BitrateKbps   int
	SegmentLength int
	GOPSize       int

	// ScaleFilter is the ffmpeg -vf expression, empty when source
	// dimensions are kept.
	ScaleFilter string

	// Source and resolved target dimensions, for diagnostics. A zero
	// target dimension means it could not be determined (unknown source).
	SourceWidth  int
	SourceHeight int
	TargetWidth  int
	TargetHeight int
}

// BuildPlan derives the encode plan from the request and the probed source
// properties.
func BuildPlan(cfg *config.Config, info *probe.VideoInfo) *EncodePlan {
	w, h := ResolveDimensions(cfg.Width, cfg.Height, info.Width, info.Height)
	return &EncodePlan{
		OutputDir:      cfg.OutputDir,
		PlaylistPath:   filepath.Join(cfg.OutputDir, "index.m3u8"),
		SegmentPattern: filepath.Join(cfg.OutputDir, "index_%03d.ts"),
		BitrateKbps:    cfg.BitrateKbps,
		SegmentLength:  cfg.SegmentLength,
		GOPSize:        GOPSize(info.FPS, cfg.SegmentLength),
		ScaleFilter:    ScaleFilter(cfg.Width, cfg.Height),
		SourceWidth:    info.Width,
		SourceHeight:   info.Height,
		TargetWidth:    w,
		TargetHeight:   h,
	}
}

// GOPSize returns the keyframe interval in frames: round(fps * segment
// length). Rounding (not truncation) keeps forced keyframes and the GOP
// boundary on the same frame for NTSC-style fractional rates. The same
// value feeds both -g and -keyint_min.
func GOPSize(fps float64, segmentLength int) int {
	return int(math.Round(fps * float64(segmentLength)))
}

// ScaleFilter returns the -vf scale expression for the requested target
// dimensions, or "" when the source dimensions are kept. A single requested
// dimension uses -2 so ffmpeg preserves aspect ratio with even rounding.
func ScaleFilter(width, height int) string {
	switch {
	case width > 0 && height > 0:
		return fmt.Sprintf("scale=%d:%d", width, height)
	case width > 0:
		return fmt.Sprintf("scale=%d:-2", width)
	case height > 0:
		return fmt.Sprintf("scale=-2:%d", height)
	default:
		return ""
	}
}

// ResolveDimensions computes the output dimensions for diagnostics. With
// neither dimension requested the source dimensions are kept; with both,
// they are used exactly; with one, the other preserves aspect ratio rounded
// to the nearest even integer. Unknown values propagate as zero.
func ResolveDimensions(reqW, reqH, srcW, srcH int) (int, int) {
	switch {
	case reqW > 0 && reqH > 0:
		return reqW, reqH
	case reqW > 0:
		if srcW <= 0 || srcH <= 0 {
			return reqW, 0
		}
		return reqW, evenRound(float64(reqW) * float64(srcH) / float64(srcW))
	case reqH > 0:
		if srcW <= 0 || srcH <= 0 {
			return 0, reqH
		}
		return evenRound(float64(reqH) * float64(srcW) / float64(srcH)), reqH
	default:
		return srcW, srcH
	}
}

// evenRound rounds v to the nearest even integer. Exact odd ties round up,
// matching ffmpeg's even-dimension scaling closely enough for diagnostics.
func evenRound(v float64) int {
	return int(math.Round(v/2)) * 2
}
