// Package cli provides the cobra command tree for hotwatch.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driving"
	"github.com/custodia-labs/hotwatch/internal/core/ports/registry"
	"github.com/custodia-labs/hotwatch/internal/core/services"
	"github.com/custodia-labs/hotwatch/internal/logger"
)

// ConfigFileHandler rebinds the configuration port to an explicit file.
type ConfigFileHandler func(reg *registry.Registry, path string) error

// ConfigWriter persists a configuration to path.
type ConfigWriter func(path string, cfg *domain.WatchConfiguration) error

const defaultConfigFile = "hotwatch.toml"

var (
	version = "dev"

	verbose    bool
	configPath string

	portRegistry         *registry.Registry
	configurationService driving.ConfigurationService
	configFileHandler    ConfigFileHandler
	configWriter         ConfigWriter
)

var errRegistryNotConfigured = errors.New("port registry not configured")

var rootCmd = &cobra.Command{
	Use:   "hotwatch",
	Short: "Watch configuration for JVM hot-swapping",
	Long: `hotwatch resolves which folders to watch for recompiled classes and
which port the hot-swap agent listens on.

Configuration is read from HOTWATCH_* environment variables, then from a
hotwatch.{toml,yaml,yml,json,jsonc} file in the working directory or
~/.hotwatch, then from conventional build output folders.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (overrides discovery)")
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if configPath == "" {
		return nil
	}
	if portRegistry == nil || configFileHandler == nil {
		return errRegistryNotConfigured
	}
	logger.Get().Debug().Str("path", configPath).Msg("using explicit configuration file")
	return configFileHandler(portRegistry, configPath)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetRegistry wires the port registry the commands resolve through.
func SetRegistry(reg *registry.Registry) {
	portRegistry = reg
	configurationService = services.NewConfigurationService(reg)
}

// SetConfigFileHandler sets the handler applied when --config is given.
func SetConfigFileHandler(h ConfigFileHandler) {
	configFileHandler = h
}

// SetConfigWriter sets the writer used by config write.
func SetConfigWriter(w ConfigWriter) {
	configWriter = w
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
