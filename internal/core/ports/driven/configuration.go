package driven

import (
	"context"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

// ConfigurationPort loads the watch configuration from wherever it lives.
// Implementations handle the source (TOML/YAML/JSON files, environment, test doubles).
type ConfigurationPort interface {
	// LoadWatchConfiguration returns a fully populated configuration.
	// It fails with a *domain.ConfigurationLoadError when the source is missing,
	// malformed or inaccessible. There are no partial results.
	// Blocking, if any, happens here; callers bound it through ctx.
	LoadWatchConfiguration(ctx context.Context) (*domain.WatchConfiguration, error)
}

// SourceDescriber is optionally implemented by a ConfigurationPort to report
// where its configuration comes from.
type SourceDescriber interface {
	// ConfigurationSource returns a human-readable description of the source.
	ConfigurationSource() string
}
