// Package chain composes several ConfigurationPorts into one: the first
// source that has a configuration answers.
package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driven"
	"github.com/custodia-labs/hotwatch/internal/logger"
)

// Ensure Loader implements the interfaces.
var (
	_ driven.ConfigurationPort = (*Loader)(nil)
	_ driven.SourceDescriber   = (*Loader)(nil)
)

// Loader tries its sources in order. A source failing with
// domain.ErrConfigurationNotFound is skipped; any other failure is returned
// unchanged.
type Loader struct {
	sources []driven.ConfigurationPort

	mu   sync.RWMutex
	last string
}

// NewLoader creates a chain over sources. Nil sources are ignored.
func NewLoader(sources ...driven.ConfigurationPort) *Loader {
	l := &Loader{}
	for _, s := range sources {
		if s != nil {
			l.sources = append(l.sources, s)
		}
	}
	return l
}

// LoadWatchConfiguration returns the configuration of the first source that has one.
func (l *Loader) LoadWatchConfiguration(ctx context.Context) (*domain.WatchConfiguration, error) {
	for _, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, domain.NewConfigurationLoadError(l.describeAll(), err)
		}

		cfg, err := src.LoadWatchConfiguration(ctx)
		if err == nil && cfg == nil {
			err = fmt.Errorf("%w: %s returned no configuration", domain.ErrConfigurationNotFound, describe(src))
		}
		if err == nil {
			l.mu.Lock()
			l.last = describe(src)
			l.mu.Unlock()
			return cfg, nil
		}
		if !errors.Is(err, domain.ErrConfigurationNotFound) {
			return nil, err
		}
		logger.Get().Debug().Str("source", describe(src)).Err(err).Msg("configuration source skipped")
	}

	return nil, domain.NewConfigurationLoadError(l.describeAll(),
		fmt.Errorf("%w: no source provided a configuration", domain.ErrConfigurationNotFound))
}

// ConfigurationSource reports the source that answered the last successful
// load, or the whole chain when none has yet.
func (l *Loader) ConfigurationSource() string {
	l.mu.RLock()
	last := l.last
	l.mu.RUnlock()
	if last != "" {
		return last
	}
	return l.describeAll()
}

func (l *Loader) describeAll() string {
	names := make([]string, len(l.sources))
	for i, s := range l.sources {
		names[i] = describe(s)
	}
	return "chain[" + strings.Join(names, ", ") + "]"
}

func describe(p driven.ConfigurationPort) string {
	if d, ok := p.(driven.SourceDescriber); ok {
		return d.ConfigurationSource()
	}
	return fmt.Sprintf("%T", p)
}
