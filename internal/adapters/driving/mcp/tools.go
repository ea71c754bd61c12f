package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

// WatchConfigurationInput is the input schema for the watch_configuration tool.
type WatchConfigurationInput struct{}

// WatchConfigurationOutput is the output schema for the watch_configuration tool.
type WatchConfigurationOutput struct {
	Source  string         `json:"source,omitempty"`
	Port    int            `json:"port"`
	Folders []FolderOutput `json:"folders"`
}

// FolderOutput represents one watched folder.
type FolderOutput struct {
	Path       string   `json:"path"`
	IntervalMS int64    `json:"interval_ms"`
	Patterns   []string `json:"patterns"`
	Recursive  bool     `json:"recursive"`
}

// CatalogInput is the input schema for the catalogue tools.
type CatalogInput struct{}

// DocumentationTypesOutput is the output schema for the documentation_types tool.
type DocumentationTypesOutput struct {
	Types []string `json:"types"`
}

// ErrorSeveritiesOutput is the output schema for the error_severities tool.
type ErrorSeveritiesOutput struct {
	Severities []SeverityOutput `json:"severities"`
}

// SeverityOutput describes one error severity.
type SeverityOutput struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "watch_configuration",
		Description: "Load the active hot-swap watch configuration (port and watched folders)",
	}, s.handleWatchConfiguration)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "documentation_types",
		Description: "List the documentation categories known to hotwatch",
	}, s.handleDocumentationTypes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "error_severities",
		Description: "List the error severity levels, least severe first",
	}, s.handleErrorSeverities)
}

// handleWatchConfiguration loads the configuration through the configuration service.
func (s *Server) handleWatchConfiguration(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ WatchConfigurationInput,
) (*mcp.CallToolResult, WatchConfigurationOutput, error) {
	cfg, err := s.ports.Configuration.Load(ctx)
	if err != nil {
		return nil, WatchConfigurationOutput{}, err
	}

	output := toOutput(cfg)
	if source, err := s.ports.Configuration.Source(); err == nil {
		output.Source = source
	}
	return nil, output, nil
}

func (s *Server) handleDocumentationTypes(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CatalogInput,
) (*mcp.CallToolResult, DocumentationTypesOutput, error) {
	types := domain.DocumentationTypes()
	output := DocumentationTypesOutput{Types: make([]string, len(types))}
	for i, t := range types {
		output.Types[i] = t.String()
	}
	return nil, output, nil
}

func (s *Server) handleErrorSeverities(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CatalogInput,
) (*mcp.CallToolResult, ErrorSeveritiesOutput, error) {
	severities := domain.ErrorSeverities()
	output := ErrorSeveritiesOutput{Severities: make([]SeverityOutput, len(severities))}
	for i, sev := range severities {
		output.Severities[i] = SeverityOutput{
			Name:        sev.String(),
			Level:       sev.Level(),
			Description: sev.Description(),
		}
	}
	return nil, output, nil
}

func toOutput(cfg *domain.WatchConfiguration) WatchConfigurationOutput {
	folders := cfg.Folders()
	output := WatchConfigurationOutput{
		Port:    cfg.Port(),
		Folders: make([]FolderOutput, len(folders)),
	}
	for i, f := range folders {
		output.Folders[i] = FolderOutput{
			Path:       f.Path,
			IntervalMS: f.Interval.Milliseconds(),
			Patterns:   f.Patterns,
			Recursive:  f.Recursive,
		}
	}
	return output
}
