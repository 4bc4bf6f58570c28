// Package playlist parses HLS playlist text and flattens playlist inputs
// into a single intermediate media file via lossless stream-copy
// concatenation.
package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads the playlist at path and returns its segment references in
// order. Every non-empty line not starting with '#' is a reference;
// relative references are resolved against the playlist's parent directory,
// absolute paths and URLs are kept verbatim.
func Parse(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return ParseContent(string(data), filepath.Dir(path)), nil
}

// ParseContent extracts segment references from playlist text, resolving
// relative references against baseDir. Exported for re-parsing generated
// playlists whose segments live under the output directory.
func ParseContent(content, baseDir string) []string {
	var segments []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		segments = append(segments, resolveRef(line, baseDir))
	}
	return segments
}

// resolveRef resolves a single reference line. Absolute paths and URLs pass
// through unchanged.
func resolveRef(line, baseDir string) string {
	if strings.HasPrefix(line, "/") || strings.HasPrefix(line, "http") {
		return line
	}
	return filepath.Join(baseDir, line)
}
