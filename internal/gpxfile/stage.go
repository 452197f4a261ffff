package gpxfile

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var stagePattern = regexp.MustCompile(`stage-(\d+)`)

// StageNumber extracts the stage number from a filename like
// "tour-stage-7.gpx". The second return is false when the name carries no
// stage marker.
func StageNumber(filename string) (int, bool) {
	m := stagePattern.FindStringSubmatch(strings.ToLower(filepath.Base(filename)))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByStage orders filenames by stage number when present, with unnumbered
// files after all numbered ones in alphabetical order.
func SortByStage(files []string) {
	sort.SliceStable(files, func(i, j int) bool {
		ni, oki := StageNumber(files[i])
		nj, okj := StageNumber(files[j])
		switch {
		case oki && okj:
			return ni < nj
		case oki:
			return true
		case okj:
			return false
		default:
			return filepath.Base(files[i]) < filepath.Base(files[j])
		}
	})
}
