package mcp

import (
	"github.com/Alina998/hh-project/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Vacancy searches hh.ru and manages the store.
	Vacancy driving.VacancyService

	// Settings exposes the resolved configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Vacancy == nil {
		return ErrMissingVacancyService
	}
	return nil
}
