// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/Alina998/hh-project/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
// Err may be set alongside partial Vacancies.
type SearchCompleted struct {
	Vacancies []domain.Vacancy
	Err       error
}

// SaveCompleted carries the outcome of saving results.
type SaveCompleted struct {
	Result domain.SaveResult
	Err    error
}

// Quit signals the application should exit.
type Quit struct{}
