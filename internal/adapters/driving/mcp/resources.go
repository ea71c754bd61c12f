package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for hotwatch resources.
	uriScheme = "hotwatch://"

	configurationURI = uriScheme + "configuration"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         configurationURI,
		Name:        "configuration",
		Description: "The active watch configuration",
		MIMEType:    "application/json",
	}, s.handleConfigurationResource)
}

// handleConfigurationResource returns the watch configuration as JSON.
func (s *Server) handleConfigurationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if req.Params.URI != configurationURI {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	cfg, err := s.ports.Configuration.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	output := toOutput(cfg)
	if source, err := s.ports.Configuration.Source(); err == nil {
		output.Source = source
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling configuration: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
