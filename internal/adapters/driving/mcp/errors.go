// Package mcp provides an MCP (Model Context Protocol) server adapter for hhvac.
// It lets AI assistants search hh.ru and manage the local vacancy store.
package mcp

import "errors"

// ErrMissingVacancyService is returned when the vacancy service is not provided.
var ErrMissingVacancyService = errors.New("mcp: vacancy service is required")
