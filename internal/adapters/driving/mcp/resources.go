package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriScheme = "hhvac://"

	vacanciesURI = uriScheme + "vacancies"
	settingsURI  = uriScheme + "settings"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         vacanciesURI,
		Name:        "vacancies",
		Description: "The local vacancy store",
		MIMEType:    "application/json",
	}, s.handleVacanciesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "settings",
		Description: "Resolved hhvac configuration",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleVacanciesResource returns the stored vacancies as a JSON array.
// An absent store reads as an empty array.
func (s *Server) handleVacanciesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	result, err := s.ports.Vacancy.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vacancies: %w", err)
	}

	data, err := json.MarshalIndent(toOutputs(result.Vacancies), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling vacancies: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

// handleSettingsResource returns the resolved settings without secrets.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	type settingsInfo struct {
		BaseURL        string  `json:"base_url"`
		Authenticated  bool    `json:"authenticated"`
		RequestsPerSec float64 `json:"requests_per_second"`
		MaxPages       int     `json:"max_pages"`
		PerPage        int     `json:"per_page"`
		Backend        string  `json:"backend"`
		StorePath      string  `json:"store_path"`
	}

	data, err := json.MarshalIndent(settingsInfo{
		BaseURL:        settings.API.BaseURL,
		Authenticated:  settings.API.AccessToken != "",
		RequestsPerSec: settings.API.RequestsPerSecond,
		MaxPages:       settings.Fetch.MaxPages,
		PerPage:        settings.Fetch.PerPage,
		Backend:        settings.Storage.Backend.String(),
		StorePath:      settings.Storage.Path,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

func jsonResource(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}
