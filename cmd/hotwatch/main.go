package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/chain"
	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/defaults"
	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/env"
	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hotwatch/internal/adapters/driving/cli"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driven"
	"github.com/custodia-labs/hotwatch/internal/core/ports/registry"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, err := compose()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hotwatch: %v\n", err)
		os.Exit(1)
	}

	cli.SetVersion(version)
	cli.SetRegistry(reg)
	cli.SetConfigFileHandler(bindConfigFile)
	cli.SetConfigWriter(file.Write)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// compose binds the default configuration chain: environment, then the first
// discovered configuration file, then build output folders.
func compose() (*registry.Registry, error) {
	sources := []driven.ConfigurationPort{env.NewLoader()}
	if path, ok := file.Discover(file.DefaultSearchDirs()...); ok {
		sources = append(sources, file.NewLoader(path))
	}
	sources = append(sources, defaults.NewLoader("."))

	reg := registry.New()
	if err := registry.Register[driven.ConfigurationPort](reg, chain.NewLoader(sources...)); err != nil {
		return nil, err
	}
	return reg, nil
}

// bindConfigFile replaces the bound configuration port with a loader for path.
func bindConfigFile(reg *registry.Registry, path string) error {
	return registry.Register[driven.ConfigurationPort](reg, file.NewLoader(path))
}
