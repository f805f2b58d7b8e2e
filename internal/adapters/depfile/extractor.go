// Package depfile reads the dependency side-channels compilers write next to their outputs.
package depfile

import (
	"os"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

var _ ports.DependencyExtractor = (*Extractor)(nil)

// Extractor implements ports.DependencyExtractor for both supported side-channel formats.
// It only ever reads.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract dispatches on the toolchain family.
func (e *Extractor) Extract(obj domain.Object, toolchain domain.Toolchain) ([]string, bool) {
	path := domain.SidecarPath(obj.Dst, toolchain.DepsExt())

	if !isRegularFile(path) {
		e.logger.Debug("no dependency record", "path", path)
		return nil, false
	}

	//nolint:gosec // Path is derived from the caller's output path
	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Debug("dependency record unreadable", "path", path, "error", err)
		return nil, false
	}

	var (
		deps []string
		ok   bool
	)
	switch toolchain {
	case domain.ToolchainMSVC:
		deps, ok = ParseSourceDependencies(data, obj.Src)
	default:
		deps, ok = ParseMakeRule(data)
	}

	if !ok {
		e.logger.Debug("dependency record malformed", "path", path)
		return nil, false
	}
	return deps, true
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
