// Package fs provides file system adapters for resolving timestamps.
package fs

import (
	"os"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

var _ ports.TimestampOracle = (*Oracle)(nil)

// Oracle resolves file modification times straight from the file system.
// Nothing is cached between calls.
type Oracle struct{}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{}
}

// ModTime opens path and returns its modification time.
// Any failure, including a transient one, yields an unknown timestamp.
func (o *Oracle) ModTime(path string) domain.Timestamp {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.UnknownTimestamp()
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return domain.UnknownTimestamp()
	}
	return domain.KnownTimestamp(info.ModTime())
}

// IsRegularFile reports whether path exists and is a regular file, following symlinks.
func (o *Oracle) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
