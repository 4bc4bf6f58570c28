// Package probe wraps ffprobe invocations behind a small Prober type. All
// metadata is consumed in ffprobe's flat key=value line form and parsed by
// a tolerant line scanner: unrecognized keys are ignored and a missing key
// never fails, it only leaves the documented default in place.
package probe

import (
	"context"
	"strconv"
	"strings"
)

// Runner executes an external tool and returns its captured output. It is
// declared here rather than imported so that probe stays a leaf package;
// the ffmpeg package's Runner satisfies it structurally.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// Prober issues ffprobe calls through a Runner so tests can substitute
// canned output.
type Prober struct {
	run Runner
}

// New returns a Prober backed by run.
func New(run Runner) *Prober {
	return &Prober{run: run}
}

// VideoInfo probes path for duration, dimensions, and frame rate. Probe or
// parse failures are non-fatal: the returned VideoInfo always carries the
// defaults (FPS 30.0, everything else zero) alongside the error, so the
// caller can log a warning and continue.
func (p *Prober) VideoInfo(ctx context.Context, path string) (VideoInfo, error) {
	info := VideoInfo{FPS: DefaultFPS}

	out, _, err := p.run.Run(ctx, "ffprobe",
		"-v", "quiet",
		"-show_format", "-show_streams",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	if err != nil {
		return info, err
	}

	scanKeyValues(out, func(key, value string) {
		switch key {
		case "duration":
			if d, err := strconv.ParseFloat(value, 64); err == nil && info.Duration == 0 {
				info.Duration = d
			}
		case "width":
			if w, err := strconv.Atoi(value); err == nil && info.Width == 0 {
				info.Width = w
			}
		case "height":
			if h, err := strconv.Atoi(value); err == nil && info.Height == 0 {
				info.Height = h
			}
		case "r_frame_rate":
			if fps := parseRational(value); fps > 0 && info.FPS == DefaultFPS {
				info.FPS = fps
			}
		}
	})
	return info, nil
}

// ContainerFormat probes path's container and returns the format_name value
// (possibly empty). An error means the probe invocation itself failed, which
// is the only case the input classifier cannot default from.
func (p *Prober) ContainerFormat(ctx context.Context, path string) (string, error) {
	out, _, err := p.run.Run(ctx, "ffprobe", "-v", "quiet", "-show_format", path)
	if err != nil {
		return "", err
	}

	format := ""
	scanKeyValues(out, func(key, value string) {
		if key == "format_name" && format == "" {
			format = value
		}
	})
	return format, nil
}

// FirstFrameKeyframe reports whether the first decoded frame of path is a
// keyframe, reading a single frame only. Probe failures degrade to
// KeyframeUnknown; this call never returns an error.
func (p *Prober) FirstFrameKeyframe(ctx context.Context, path string) KeyframeStatus {
	out, _, err := p.run.Run(ctx, "ffprobe",
		"-v", "quiet",
		"-select_streams", "v:0",
		"-show_frames",
		"-show_entries", "frame=key_frame",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"-read_intervals", "%+#1",
		path,
	)
	if err != nil {
		return KeyframeUnknown
	}
	switch strings.TrimSpace(out) {
	case "1":
		return KeyframePresent
	case "0":
		return KeyframeAbsent
	default:
		return KeyframeUnknown
	}
}

// CodecDetails probes the first video stream of path for its codec
// parameters, reported verbatim.
func (p *Prober) CodecDetails(ctx context.Context, path string) (CodecDetails, error) {
	var d CodecDetails

	out, _, err := p.run.Run(ctx, "ffprobe",
		"-v", "quiet",
		"-show_streams",
		"-select_streams", "v:0",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	if err != nil {
		return d, err
	}

	scanKeyValues(out, func(key, value string) {
		switch key {
		case "codec_name":
			if d.CodecName == "" {
				d.CodecName = value
			}
		case "profile":
			if d.Profile == "" {
				d.Profile = value
			}
		case "level":
			if d.Level == "" {
				d.Level = value
			}
		case "bit_rate":
			if d.BitRate == "" {
				d.BitRate = value
			}
		case "width":
			if d.Width == "" {
				d.Width = value
			}
		case "height":
			if d.Height == "" {
				d.Height = value
			}
		}
	})
	return d, nil
}

// scanKeyValues walks ffprobe's key=value output line by line and calls fn
// for every well-formed pair. Lines without '=' are skipped.
func scanKeyValues(out string, fn func(key, value string)) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		fn(key, strings.TrimSpace(value))
	}
}

// parseRational parses ffprobe frame rates: "30000/1001" rationals or plain
// numbers. Returns 0 when the value is malformed or the denominator is zero.
func parseRational(s string) float64 {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0
		}
		return n / d
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
