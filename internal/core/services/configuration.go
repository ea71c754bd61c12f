package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driven"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driving"
	"github.com/custodia-labs/hotwatch/internal/core/ports/registry"
)

// Ensure ConfigurationService implements the interface.
var _ driving.ConfigurationService = (*ConfigurationService)(nil)

// LoadWatchConfiguration resolves the configuration port bound in reg and loads
// the configuration from it. Both domain.ErrPortNotConfigured and the port's own
// error are returned unchanged so callers can tell them apart. A nil reg
// behaves as an empty registry. A port answering with neither a configuration
// nor an error fails with a *domain.ConfigurationLoadError.
func LoadWatchConfiguration(ctx context.Context, reg *registry.Registry) (*domain.WatchConfiguration, error) {
	port, err := registry.Resolve[driven.ConfigurationPort](reg)
	if err != nil {
		return nil, err
	}
	cfg, err := port.LoadWatchConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.NewConfigurationLoadError(describe(port),
			fmt.Errorf("%w: port returned no configuration", domain.ErrConfigurationNotFound))
	}
	return cfg, nil
}

// ConfigurationService gives driving adapters a stable entry point for loading
// the watch configuration. Every call re-resolves the port; nothing is cached.
type ConfigurationService struct {
	registry *registry.Registry
}

// NewConfigurationService creates a configuration service over reg.
func NewConfigurationService(reg *registry.Registry) *ConfigurationService {
	return &ConfigurationService{registry: reg}
}

// Load loads the watch configuration from the currently bound port.
func (s *ConfigurationService) Load(ctx context.Context) (*domain.WatchConfiguration, error) {
	return LoadWatchConfiguration(ctx, s.registry)
}

// Source describes the currently bound configuration port.
// Ports that do not describe themselves are reported by their Go type.
func (s *ConfigurationService) Source() (string, error) {
	port, err := registry.Resolve[driven.ConfigurationPort](s.registry)
	if err != nil {
		return "", err
	}
	return describe(port), nil
}

func describe(port driven.ConfigurationPort) string {
	if d, ok := port.(driven.SourceDescriber); ok {
		return d.ConfigurationSource()
	}
	return fmt.Sprintf("%T", port)
}
