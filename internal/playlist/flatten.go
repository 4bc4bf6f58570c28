package playlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/segmaster/internal/ffmpeg"
)

// IntermediateName is the transient concatenated media file written into
// the output directory. The pipeline removes it on every exit path.
const IntermediateName = "temp_concatenated.ts"

// Logger is the minimal logging interface Flatten needs, so the package
// stays decoupled from the concrete logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
}

// Flatten concatenates the given segment files into one intermediate media
// file inside outputDir using ffmpeg's stream-copy concat mode, and returns
// its path. Segments missing on disk are skipped with a warning. The
// transient concat list file is always removed, regardless of success. On a
// failed concat the target path is still returned: ffmpeg runs with -y and
// may have created a partial file the caller must remove.
func Flatten(ctx context.Context, run ffmpeg.Runner, log Logger, segments []string, outputDir string) (string, error) {
	listPath, count, err := writeConcatList(log, segments, outputDir)
	if err != nil {
		return "", err
	}
	defer os.Remove(listPath)

	if count == 0 {
		return "", fmt.Errorf("no playlist segments found on disk")
	}

	target := filepath.Join(outputDir, IntermediateName)
	args := ffmpeg.ConcatBuild(listPath, target)

	log.Info("Concatenating %d segments...", count)
	if _, stderr, err := run.Run(ctx, args[0], args[1:]...); err != nil {
		return target, &ffmpeg.ConcatError{Stderr: stderr, Err: err}
	}
	return target, nil
}

// writeConcatList writes the transient concat demuxer list file ("file
// '<path>'" per line) for every segment that exists on disk, returning its
// path and the number of entries written.
func writeConcatList(log Logger, segments []string, outputDir string) (string, int, error) {
	f, err := os.CreateTemp(outputDir, "concat-*.txt")
	if err != nil {
		return "", 0, fmt.Errorf("create concat list: %w", err)
	}
	defer f.Close()

	count := 0
	for _, seg := range segments {
		if _, err := os.Stat(seg); err != nil {
			log.Warn("Segment not found: %s", seg)
			continue
		}
		// Single quotes in paths must be escaped for the concat demuxer.
		escaped := strings.ReplaceAll(seg, "'", `'\''`)
		if _, err := fmt.Fprintf(f, "file '%s'\n", escaped); err != nil {
			os.Remove(f.Name())
			return "", 0, fmt.Errorf("write concat list: %w", err)
		}
		count++
	}
	return f.Name(), count, nil
}
