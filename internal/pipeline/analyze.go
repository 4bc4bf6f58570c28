package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/display"
	"github.com/backmassage/segmaster/internal/logging"
	"github.com/backmassage/segmaster/internal/planner"
	"github.com/backmassage/segmaster/internal/playlist"
	"github.com/backmassage/segmaster/internal/probe"
	"github.com/backmassage/segmaster/internal/term"
)

// Analyze re-reads the generated playlist and reports per-segment sizes,
// keyframe alignment, and the codec parameters of the first segment. It is
// purely observational: probe failures degrade to "undetermined" labels and
// nothing here affects the run's outcome.
func Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger, prober *probe.Prober, plan *planner.EncodePlan) {
	data, err := os.ReadFile(plan.PlaylistPath)
	if err != nil {
		log.Warn("No playlist found for analysis: %v", err)
		return
	}

	log.Info("=== Output Analysis ===")
	if cfg.Verbose {
		log.Debug(true, "Playlist content:\n%s", string(data))
	}

	segments := playlist.ParseContent(string(data), plan.OutputDir)
	log.Info("Segment analysis (%d segments):", len(segments))

	var totalBytes int64
	for i, seg := range segments {
		name := filepath.Base(seg)
		fi, err := os.Stat(seg)
		if err != nil {
			log.Warn("  %2d. %s - %sMISSING%s", i+1, name, term.Red, term.NC)
			continue
		}
		totalBytes += fi.Size()

		status := prober.FirstFrameKeyframe(ctx, seg)
		log.Info("  %2d. %s - %s [%s]", i+1, name, display.FormatKB(fi.Size()), keyframeLabel(status))
	}

	log.Info("Total size: %s (%s)", display.FormatKB(totalBytes), display.FormatBytes(totalBytes))

	if len(segments) > 0 {
		reportCodecDetails(ctx, log, prober, segments[0])
	}
}

// keyframeLabel colors the keyframe status by severity: a segment that does
// not open on a keyframe is a playback defect, undetermined is only a probe
// limitation.
func keyframeLabel(status probe.KeyframeStatus) string {
	switch status {
	case probe.KeyframeAbsent:
		return term.Red + status.String() + term.NC
	case probe.KeyframeUnknown:
		return term.Orange + status.String() + term.NC
	default:
		return status.String()
	}
}

// reportCodecDetails prints the probed codec parameters of the sample
// segment, skipping keys the probe did not return.
func reportCodecDetails(ctx context.Context, log *logging.Logger, prober *probe.Prober, sample string) {
	d, err := prober.CodecDetails(ctx, sample)
	if err != nil {
		log.Warn("Could not verify codec: %v", err)
		return
	}

	log.Info("Codec verification (sample: %s):", filepath.Base(sample))
	pairs := []struct{ key, value string }{
		{"codec_name", d.CodecName},
		{"profile", d.Profile},
		{"level", d.Level},
		{"bit_rate", d.BitRate},
		{"width", d.Width},
		{"height", d.Height},
	}
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		log.Info("  %s: %s", p.key, p.value)
	}
}
