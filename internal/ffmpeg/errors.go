package ffmpeg

import (
	"fmt"
	"strings"
)

// stderrTail limits how much tool output is embedded in an error message.
const stderrTail = 10

// EncodeError reports a failed transcode invocation, carrying the tool's
// captured diagnostic output.
type EncodeError struct {
	Stderr string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("ffmpeg encode failed: %v%s", e.Err, tailLines(e.Stderr))
}

func (e *EncodeError) Unwrap() error { return e.Err }

// ConcatError reports a failed stream-copy concatenation, carrying the
// tool's captured diagnostic output.
type ConcatError struct {
	Stderr string
	Err    error
}

func (e *ConcatError) Error() string {
	return fmt.Sprintf("ffmpeg concat failed: %v%s", e.Err, tailLines(e.Stderr))
}

func (e *ConcatError) Unwrap() error { return e.Err }

// tailLines returns the last stderrTail lines of s, formatted for appending
// to an error message. Empty input yields an empty string.
func tailLines(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > stderrTail {
		lines = lines[len(lines)-stderrTail:]
	}
	return "\n" + strings.Join(lines, "\n")
}
