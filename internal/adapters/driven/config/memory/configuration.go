package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driven"
)

// Ensure ConfigurationPort implements the interfaces.
var (
	_ driven.ConfigurationPort = (*ConfigurationPort)(nil)
	_ driven.SourceDescriber   = (*ConfigurationPort)(nil)
)

// ConfigurationPort is an in-memory implementation of driven.ConfigurationPort for testing.
// It returns whatever configuration or error it currently holds.
type ConfigurationPort struct {
	mu    sync.RWMutex
	cfg   *domain.WatchConfiguration
	err   error
	calls int
}

// NewConfigurationPort creates an in-memory port that returns cfg.
func NewConfigurationPort(cfg *domain.WatchConfiguration) *ConfigurationPort {
	return &ConfigurationPort{cfg: cfg}
}

// NewFailingConfigurationPort creates an in-memory port that always fails with err.
func NewFailingConfigurationPort(err error) *ConfigurationPort {
	return &ConfigurationPort{err: err}
}

// LoadWatchConfiguration returns the held configuration or error.
func (p *ConfigurationPort) LoadWatchConfiguration(ctx context.Context) (*domain.WatchConfiguration, error) {
	p.mu.Lock()
	p.calls++
	cfg, err := p.cfg, p.err
	p.mu.Unlock()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, domain.NewConfigurationLoadError(p.ConfigurationSource(), ctxErr)
	}
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.NewConfigurationLoadError(p.ConfigurationSource(), domain.ErrConfigurationNotFound)
	}
	return cfg, nil
}

// Set replaces the held configuration and clears any error.
func (p *ConfigurationPort) Set(cfg *domain.WatchConfiguration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
	p.err = nil
}

// SetError makes subsequent loads fail with err.
func (p *ConfigurationPort) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Calls returns how many times the configuration has been loaded.
func (p *ConfigurationPort) Calls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.calls
}

// ConfigurationSource describes the port.
func (p *ConfigurationPort) ConfigurationSource() string {
	return "memory"
}
