package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Terrain profile label constants, keyed off ascent per kilometer.
const (
	MountainValue = "Mountain" // Mountain profile
	HillyValue    = "Hilly"    // Hilly profile
	RollingValue  = "Rolling"  // Rolling profile
	FlatValue     = "Flat"     // Flat profile
)

// Color variables for console output.
var (
	MountainColor = color.New(color.FgRed, color.Bold)     // mountainColor flags the hardest profiles.
	HillyColor    = color.New(color.FgMagenta, color.Bold) // hillyColor represents strong, distinct effort.
	RollingColor  = color.New(color.FgYellow)              // rollingColor represents moderate effort, not bold.
	FlatColor     = color.New(color.FgCyan)                // flatColor represents easy / recovery terrain.
)

// GetPlainLabel returns a plain text terrain label based on the route's
// ascent in meters per kilometer of distance. This is the core logic used
// for CSV, JSON, and table printing.
func GetPlainLabel(ascentPerKm float64) string {
	switch {
	case ascentPerKm >= 20:
		return MountainValue
	case ascentPerKm >= 10:
		return HillyValue
	case ascentPerKm >= 5:
		return RollingValue
	default:
		return FlatValue
	}
}

// GetColorLabel returns a colored terrain label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(ascentPerKm float64) string {
	text := GetPlainLabel(ascentPerKm)

	switch text {
	case MountainValue:
		return MountainColor.Sprint(text)
	case HillyValue:
		return HillyColor.Sprint(text)
	case RollingValue:
		return RollingColor.Sprint(text)
	default: // "Flat"
		return FlatColor.Sprint(text)
	}
}

// AscentPerKm returns ascent meters per kilometer, guarding the zero-distance
// case.
func AscentPerKm(distanceKm, ascentM float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return ascentM / distanceKm
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for elevation cache
// storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gpxscale_cache.db"
	}
	return filepath.Join(homeDir, ".gpxscale_cache.db")
}

// TruncateName truncates a route name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
