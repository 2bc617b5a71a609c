package ports

import "go.trai.ch/weft/internal/core/domain"

// ManifestLoader defines the interface for loading the component manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at the given path.
	Load(path string) (*domain.Manifest, error)
}
