// Package gpxfile handles route file discovery, parsing, and export across
// the supported formats.
package gpxfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover returns the GPX files directly under folder, in stage order.
// Numbered stages come first, then the rest alphabetically.
func Discover(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".gpx") {
			files = append(files, filepath.Join(folder, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no GPX files found in %s", folder)
	}

	SortByStage(files)
	return files, nil
}

// DisplayName returns the human-facing name for a route file: "Stage N" when
// the filename carries a stage marker, the bare base name otherwise.
func DisplayName(file string) string {
	if n, ok := StageNumber(file); ok {
		return fmt.Sprintf("Stage %d", n)
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
