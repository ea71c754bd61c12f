package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

func sampleConfig(port int) *domain.WatchConfiguration {
	return domain.NewWatchConfiguration(port, domain.FolderWatch{Path: "/src/main"})
}

func TestLoader_FirstAvailableWins(t *testing.T) {
	missing := memory.NewConfigurationPort(nil)
	first := memory.NewConfigurationPort(sampleConfig(6000))
	second := memory.NewConfigurationPort(sampleConfig(7000))

	l := NewLoader(missing, first, second)
	cfg, err := l.LoadWatchConfiguration(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port())
	assert.Equal(t, 1, missing.Calls())
	assert.Equal(t, 1, first.Calls())
	assert.Equal(t, 0, second.Calls())
	assert.Equal(t, "memory", l.ConfigurationSource())
}

func TestLoader_OtherErrorsStopTheChain(t *testing.T) {
	cause := domain.NewConfigurationLoadError("file:/etc/hotwatch.toml", errors.New("permission denied"))
	failing := memory.NewFailingConfigurationPort(cause)
	fallback := memory.NewConfigurationPort(sampleConfig(6000))

	cfg, err := NewLoader(failing, fallback).LoadWatchConfiguration(context.Background())

	assert.Nil(t, cfg)
	assert.Same(t, cause, err)
	assert.Equal(t, 0, fallback.Calls())
}

func TestLoader_AllMissing(t *testing.T) {
	tests := []struct {
		name string
		l    *Loader
	}{
		{name: "no sources", l: NewLoader()},
		{name: "nil sources ignored", l: NewLoader(nil, nil)},
		{name: "every source missing", l: NewLoader(memory.NewConfigurationPort(nil), memory.NewConfigurationPort(nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.l.LoadWatchConfiguration(context.Background())

			assert.ErrorIs(t, err, domain.ErrConfigurationLoad)
			assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
		})
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	src := memory.NewConfigurationPort(sampleConfig(6000))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(src).LoadWatchConfiguration(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, src.Calls())
}

func TestLoader_ConfigurationSource(t *testing.T) {
	l := NewLoader(memory.NewConfigurationPort(nil), memory.NewConfigurationPort(sampleConfig(1)))

	assert.Equal(t, "chain[memory, memory]", l.ConfigurationSource())

	_, err := l.LoadWatchConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memory", l.ConfigurationSource())
}

type emptyPort struct{}

func (emptyPort) LoadWatchConfiguration(context.Context) (*domain.WatchConfiguration, error) {
	return nil, nil
}

func TestLoader_SkipsSourceWithoutConfiguration(t *testing.T) {
	fallback := memory.NewConfigurationPort(sampleConfig(6000))
	l := NewLoader(emptyPort{}, fallback)

	cfg, err := l.LoadWatchConfiguration(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port())
	assert.Equal(t, "memory", l.ConfigurationSource())
}

func TestLoader_OnlyEmptySources(t *testing.T) {
	cfg, err := NewLoader(emptyPort{}).LoadWatchConfiguration(context.Background())

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}
