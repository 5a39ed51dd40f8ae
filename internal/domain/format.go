package domain

import (
	"fmt"
	"strings"
	"time"
)

// Format is a snapshot output format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name. An empty name selects CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (available: csv, yaml)", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// SnapshotFileName returns the dated snapshot file name, e.g. "roadmap-2025-10-06.csv".
func SnapshotFileName(now time.Time, f Format) string {
	return fmt.Sprintf("roadmap-%s.%s", now.Format(DateLayout), f.Extension())
}
