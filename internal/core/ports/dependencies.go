package ports

import "go.trai.ch/rebuild/internal/core/domain"

// DependencyExtractor recovers the inputs a previous compiler run consumed for an object.
//
//go:generate go run go.uber.org/mock/mockgen -source=dependencies.go -destination=mocks/mock_dependencies.go -package=mocks
type DependencyExtractor interface {
	// Extract returns the dependency paths recorded for obj in the side-channel
	// format of the given toolchain. The boolean is false when no reliable record exists.
	Extract(obj domain.Object, toolchain domain.Toolchain) ([]string, bool)
}
