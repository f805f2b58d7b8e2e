package ports

import "go.trai.ch/rebuild/internal/core/domain"

// TimestampOracle resolves file modification times.
//
//go:generate go run go.uber.org/mock/mockgen -source=timestamps.go -destination=mocks/mock_timestamps.go -package=mocks
type TimestampOracle interface {
	// ModTime returns the last-modified instant of path, or an unknown timestamp
	// if the file cannot be opened or its metadata cannot be read.
	ModTime(path string) domain.Timestamp

	// IsRegularFile reports whether path exists and is a regular file.
	IsRegularFile(path string) bool
}
