package services

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService resolves configuration into domain.Settings.
type SettingsService struct {
	configStore driven.ConfigStore
	dataDir     string
}

// NewSettingsService creates a new settings service.
// dataDir is where the store lives when storage.path is not configured.
func NewSettingsService(configStore driven.ConfigStore, dataDir string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		dataDir:     dataDir,
	}
}

// Get retrieves current settings with defaults applied.
// Invalid stored values fall back to their defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	backend := domain.StorageBackend(s.configStore.GetString(domain.KeyStorageBackend))
	if !backend.IsValid() {
		backend = domain.DefaultStorageBackend
	}

	path := s.configStore.GetString(domain.KeyStoragePath)
	if path == "" {
		path = filepath.Join(s.dataDir, backend.DefaultFileName())
	}

	timeout := domain.DefaultAPITimeout
	if secs := s.configStore.GetInt(domain.KeyAPITimeoutSeconds); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	rps := s.configStore.GetFloat(domain.KeyAPIRequestsPerSec)
	if rps < 0 {
		rps = 0
	}

	settings := &domain.Settings{
		API: domain.APISettings{
			BaseURL:           s.getString(domain.KeyAPIBaseURL, domain.DefaultAPIBaseURL),
			UserAgent:         s.getString(domain.KeyAPIUserAgent, domain.DefaultAPIUserAgent),
			AccessToken:       s.configStore.GetString(domain.KeyAPIAccessToken),
			Timeout:           timeout,
			RequestsPerSecond: rps,
		},
		Fetch: domain.FetchSettings{
			MaxPages: s.getPositiveInt(domain.KeyFetchMaxPages, domain.DefaultMaxPages),
			PerPage:  s.getPositiveInt(domain.KeyFetchPerPage, domain.DefaultPerPage),
		},
		Storage: domain.StorageSettings{
			Backend: backend,
			Path:    path,
		},
	}

	return settings, nil
}

// Set parses value according to the key's type, validates it and persists it.
func (s *SettingsService) Set(key, value string) error {
	if !domain.IsSettingKey(key) {
		return fmt.Errorf("%q: %w", key, domain.ErrUnknownSetting)
	}

	var parsed any
	switch key {
	case domain.KeyAPITimeoutSeconds, domain.KeyFetchMaxPages, domain.KeyFetchPerPage:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q: %w", key, value, domain.ErrInvalidInput)
		}
		parsed = n
	case domain.KeyAPIRequestsPerSec:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %q: %w", key, value, domain.ErrInvalidInput)
		}
		parsed = f
	case domain.KeyStorageBackend:
		backend := domain.StorageBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return fmt.Errorf("%q: %w", value, domain.ErrUnsupportedBackend)
		}
		parsed = backend.String()
	default:
		parsed = value
	}

	return s.configStore.Set(key, parsed)
}

// Raw returns the explicitly configured keys and their values.
func (s *SettingsService) Raw() map[string]any {
	raw := make(map[string]any)
	for _, key := range s.configStore.Keys() {
		if v, ok := s.configStore.Get(key); ok {
			raw[key] = v
		}
	}
	return raw
}

// ConfigPath returns the configuration file location.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getPositiveInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}
