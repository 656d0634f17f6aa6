package driving

import "github.com/Alina998/hh-project/internal/core/domain"

// SettingsService reads and updates application configuration.
type SettingsService interface {
	// Get returns the resolved settings with defaults applied.
	Get() (*domain.Settings, error)

	// Set validates and persists a single configuration key.
	Set(key, value string) error

	// Raw returns the explicitly configured keys and their values.
	Raw() map[string]any

	// ConfigPath returns the configuration file location.
	ConfigPath() string
}
