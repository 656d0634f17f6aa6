package wizard

import "errors"

// Error definitions for the wizard view.
var (
	// ErrNoVacancyService indicates that no vacancy service was provided.
	ErrNoVacancyService = errors.New("vacancy service is required")

	// ErrEmptyQuery is shown when the query step is submitted blank.
	ErrEmptyQuery = errors.New("enter a search query")

	// ErrInvalidTopN is shown when the top N answer is not a whole number.
	ErrInvalidTopN = errors.New("enter a whole number, or leave blank to show all")
)
