package driving

import (
	"context"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

// ConfigurationService exposes the watch configuration to driving adapters.
type ConfigurationService interface {
	// Load resolves the configuration port and loads the configuration.
	// Errors are domain.ErrPortNotConfigured or domain.ErrConfigurationLoad, unwrapped.
	Load(ctx context.Context) (*domain.WatchConfiguration, error)

	// Source describes where the configuration port reads from.
	Source() (string, error)
}
