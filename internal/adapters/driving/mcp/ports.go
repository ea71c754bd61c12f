package mcp

import (
	"github.com/custodia-labs/hotwatch/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Configuration loads the watch configuration.
	Configuration driving.ConfigurationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Configuration == nil {
		return ErrMissingConfigurationService
	}
	return nil
}
