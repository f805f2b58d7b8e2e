package ports

import "go.trai.ch/rebuild/internal/core/domain"

// ConfigLoader defines the interface for loading the unit manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the manifest called name, walking up from cwd, and returns it.
	// A name holding a directory component is opened as given instead.
	// An empty name selects domain.ManifestFileName.
	Load(cwd, name string) (*domain.Manifest, error)
}
