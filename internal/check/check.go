// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation for ffmpeg, ffprobe, libx264, and the HLS muxer.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/segmaster/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrX264Failed      = errors.New("libx264 baseline test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg,
// ffprobe, H.264 encoders, a libx264 baseline test encode, and the HLS
// muxer. This is informational only; it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkH264Encoders(log)
	checkX264Baseline(log)
	checkHLSMuxer(log)
}

// checkTool verifies the tool is on PATH and logs its version string.
func checkTool(log Logger, name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// checkH264Encoders lists all H.264-related encoders reported by ffmpeg.
func checkH264Encoders(log Logger) {
	log.Info("H.264 encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "h264") || strings.Contains(lower, "x264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkX264Baseline runs a minimal baseline-profile encode to verify the
// encoder configuration the converter depends on.
func checkX264Baseline(log Logger) {
	log.Info("Testing libx264 baseline...")
	if runSilent("ffmpeg", x264TestArgs()...) {
		log.Success("libx264 baseline works")
	} else {
		log.Error("libx264 baseline test encode failed")
	}
}

// checkHLSMuxer verifies the hls muxer is compiled into ffmpeg.
func checkHLSMuxer(log Logger) {
	cmd := exec.Command("ffmpeg", "-hide_banner", "-muxers")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list muxers: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "hls" {
			log.Success("HLS muxer available")
			return
		}
	}
	log.Error("HLS muxer not available")
}

// CheckDeps is the pre-pipeline validation: it verifies that ffmpeg and
// ffprobe are on PATH and that a libx264 baseline encode actually works.
// Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", x264TestArgs()...) {
		return ErrX264Failed
	}
	return nil
}

// x264TestArgs returns the ffmpeg arguments for a minimal libx264 baseline
// test encode. Shared by checkX264Baseline and CheckDeps.
func x264TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264", "-profile:v", "baseline",
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
