package ports

import "go.trai.ch/rig/internal/core/domain"

// ConfigLoader defines the interface for loading the test tree configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the validated configuration.
	// The directory containing path becomes the configuration root.
	// It returns domain.ErrConfigNotFound if the file does not exist.
	Load(path string) (*domain.Config, error)
}
