package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/planner"
)

// Build constructs the complete ffmpeg argument slice (including argv[0])
// for one transcode. The argument list is fully determined by cfg and plan;
// nothing is inferred at execution time.
func Build(cfg *config.Config, plan *planner.EncodePlan) []string {
	args := make([]string, 0, 64)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats", "-stats_period", "1")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input ---
	args = append(args, "-i", plan.InputPath)

	// --- Scale filter (only when target dimensions were requested) ---
	if plan.ScaleFilter != "" {
		args = append(args, "-vf", plan.ScaleFilter)
	}

	// --- Video codec: compatibility profile, low-latency tuning ---
	args = append(args,
		"-c:v", cfg.VideoEncoder,
		"-profile:v", cfg.Profile,
		"-level", cfg.Level,
		"-preset", cfg.Preset,
		"-tune", cfg.Tune,
	)

	// --- Constant bitrate (min/max pinned, buffer = 2x) ---
	bitrate := fmt.Sprintf("%dk", plan.BitrateKbps)
	args = append(args,
		"-b:v", bitrate,
		"-minrate", bitrate,
		"-maxrate", bitrate,
		"-bufsize", fmt.Sprintf("%dk", plan.BitrateKbps*2),
	)

	// --- GOP structure: a keyframe exactly every segment ---
	gop := strconv.Itoa(plan.GOPSize)
	args = append(args,
		"-g", gop,
		"-keyint_min", gop,
		"-sc_threshold", "0",
		"-force_key_frames", fmt.Sprintf("expr:gte(t,n_forced*%d)", plan.SegmentLength),
	)

	// --- Decoder compatibility: no B-frames, one reference, CAVLC ---
	args = append(args,
		"-bf", "0",
		"-refs", "1",
		"-coder", "0",
		"-fast-pskip", "1",
	)

	// --- No audio track ---
	args = append(args, "-an")

	// --- HLS muxer: vod playlist, independent fixed-length segments ---
	args = append(args,
		"-f", "hls",
		"-hls_time", strconv.Itoa(plan.SegmentLength),
		"-hls_playlist_type", "vod",
		"-hls_segment_filename", plan.SegmentPattern,
		"-hls_flags", "independent_segments",
	)

	// --- Output playlist ---
	args = append(args, plan.PlaylistPath)

	return args
}

// ConcatBuild constructs the ffmpeg argument slice (including argv[0]) for
// lossless stream-copy concatenation of the segments listed in listPath.
func ConcatBuild(listPath, outputPath string) []string {
	return []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-y",
		"-loglevel", "error",
		"-f", "concat", "-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	}
}
