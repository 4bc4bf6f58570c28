// Package ffmpeg builds and executes ffmpeg argument lists and defines the
// subprocess Runner abstraction shared with ffprobe callers.
package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner executes an external tool and returns its captured output. The
// pipeline only ever consumes ffmpeg/ffprobe through this interface, so
// tests can substitute canned text without a real binary.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner is the real Runner backed by os/exec. Each invocation blocks
// until the tool exits; there is no timeout beyond ctx.
type execRunner struct {
	verbose bool
}

// NewRunner returns a Runner that executes commands via os/exec. When
// verbose is set, tool stderr is tee'd to os.Stderr in real time so ffmpeg
// progress stays visible; it is always captured for error reporting.
func NewRunner(verbose bool) Runner {
	return &execRunner{verbose: verbose}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	if r.verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}
