// Package classify determines whether an input path is an HLS playlist or
// a direct media file.
package classify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/segmaster/internal/probe"
)

// Kind is the detected input type.
type Kind int

const (
	KindMedia    Kind = iota // A direct media file.
	KindPlaylist             // An HLS playlist.
)

// Sentinel errors for the two classification failure modes.
var (
	ErrNotFound      = errors.New("input file not found")
	ErrUnknownFormat = errors.New("cannot determine file type")
)

// mediaExtensions are recognized directly, without a content probe.
var mediaExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
	".ts":  true,
}

// Detect classifies path by extension, falling back to an ffprobe container
// check for unrecognized extensions. Any probe answer, even an empty one,
// still classifies as media; only a failed probe invocation is fatal.
func Detect(ctx context.Context, prober *probe.Prober, path string) (Kind, error) {
	if _, err := os.Stat(path); err != nil {
		return KindMedia, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".m3u8" {
		return KindPlaylist, nil
	}
	if mediaExtensions[ext] {
		return KindMedia, nil
	}

	if _, err := prober.ContainerFormat(ctx, path); err != nil {
		return KindMedia, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return KindMedia, nil
}
