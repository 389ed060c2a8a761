package ports

import "github.com/javamap/javamap/internal/core/domain"

// ConfigLoader loads the discovery settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory,
	// applying defaults when no config file is present.
	Load(cwd string) (domain.Settings, error)
}
