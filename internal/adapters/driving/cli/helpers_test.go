package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driven"
	"github.com/custodia-labs/hotwatch/internal/core/ports/registry"
	"github.com/custodia-labs/hotwatch/internal/logger"
)

func sampleConfiguration() *domain.WatchConfiguration {
	return domain.NewWatchConfiguration(8080, domain.FolderWatch{
		Path:      "/src/main",
		Interval:  time.Second,
		Patterns:  []string{"*.class"},
		Recursive: true,
	})
}

// withRegistry binds port as the configuration port for the duration of the test.
func withRegistry(t *testing.T, port driven.ConfigurationPort) *registry.Registry {
	t.Helper()
	reg := registry.New()
	if port != nil {
		require.NoError(t, registry.Register[driven.ConfigurationPort](reg, port))
	}

	prevReg, prevSvc, prevHandler, prevWriter := portRegistry, configurationService, configFileHandler, configWriter
	SetRegistry(reg)
	t.Cleanup(func() {
		portRegistry, configurationService, configFileHandler, configWriter = prevReg, prevSvc, prevHandler, prevWriter
	})
	return reg
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configShowJSON = false
		configWriteForce = false
		severitiesMin = ""
		configPath = ""
		verbose = false
		logger.SetVerbose(false)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func memoryPort() *memory.ConfigurationPort {
	return memory.NewConfigurationPort(sampleConfiguration())
}
