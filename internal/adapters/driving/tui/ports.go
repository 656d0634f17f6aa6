// Package tui provides an interactive terminal user interface for hhvac.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Alina998/hh-project/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Vacancy searches hh.ru and saves results.
	Vacancy driving.VacancyService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(vacancy driving.VacancyService) *Ports {
	return &Ports{Vacancy: vacancy}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Vacancy == nil {
		return ErrMissingVacancyService
	}
	return nil
}
