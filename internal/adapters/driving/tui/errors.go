package tui

import "errors"

// ErrMissingVacancyService is returned when the vacancy service is not provided.
var ErrMissingVacancyService = errors.New("tui: vacancy service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
