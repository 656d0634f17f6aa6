package headhunter

import (
	"fmt"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// Query parameters and headers sent with every page request.
const (
	ParamText    = "text"
	ParamPage    = "page"
	ParamPerPage = "per_page"

	HeaderUserAgent = "User-Agent"
)

// Config controls which endpoint is queried and how far the fetcher pages.
type Config struct {
	BaseURL   string
	UserAgent string
	MaxPages  int
	PerPage   int
}

// DefaultConfig returns the configuration used against api.hh.ru.
func DefaultConfig() Config {
	return Config{
		BaseURL:   domain.DefaultAPIBaseURL,
		UserAgent: domain.DefaultAPIUserAgent,
		MaxPages:  domain.DefaultMaxPages,
		PerPage:   domain.DefaultPerPage,
	}
}

// ConfigFromSettings builds a Config from resolved settings.
func ConfigFromSettings(s *domain.Settings) Config {
	return Config{
		BaseURL:   s.API.BaseURL,
		UserAgent: s.API.UserAgent,
		MaxPages:  s.Fetch.MaxPages,
		PerPage:   s.Fetch.PerPage,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required: %w", domain.ErrInvalidInput)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max pages must be positive: %w", domain.ErrInvalidInput)
	}
	if c.PerPage <= 0 {
		return fmt.Errorf("per page must be positive: %w", domain.ErrInvalidInput)
	}
	return nil
}
