package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

// mockConfigurationService is a mock implementation of driving.ConfigurationService.
type mockConfigurationService struct {
	cfg       *domain.WatchConfiguration
	err       error
	source    string
	sourceErr error
}

func (m *mockConfigurationService) Load(_ context.Context) (*domain.WatchConfiguration, error) {
	return m.cfg, m.err
}

func (m *mockConfigurationService) Source() (string, error) {
	return m.source, m.sourceErr
}

func sampleConfiguration() *domain.WatchConfiguration {
	return domain.NewWatchConfiguration(8080, domain.FolderWatch{
		Path:      "/src/main",
		Interval:  1500 * time.Millisecond,
		Patterns:  []string{"*.class"},
		Recursive: true,
	})
}
