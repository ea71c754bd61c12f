// Package mcp provides an MCP (Model Context Protocol) server adapter for hotwatch.
// It lets AI assistants and IDE agents read the active watch configuration
// and the hot-swap catalogues.
package mcp

import "errors"

// ErrMissingConfigurationService is returned when the configuration service is not provided.
var ErrMissingConfigurationService = errors.New("mcp: configuration service is required")
