package domain

import "time"

const unknownDescription = "Unknown"

// StorageBackend selects where vacancies are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendJSON keeps vacancies in a single indented JSON file.
	StorageBackendJSON StorageBackend = "json"

	// StorageBackendSQLite keeps vacancies in a SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps vacancies in process memory only.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendJSON, StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendJSON:
		return "JSON file"
	case StorageBackendSQLite:
		return "SQLite database"
	case StorageBackendMemory:
		return "In-memory (not persisted)"
	default:
		return unknownDescription
	}
}

// DefaultFileName returns the store file name used when no path is configured.
func (b StorageBackend) DefaultFileName() string {
	if b == StorageBackendSQLite {
		return "vacancies.db"
	}
	return "fitting_vacancies.json"
}

// Configuration keys understood by the settings service.
const (
	KeyAPIBaseURL        = "api.base_url"
	KeyAPIUserAgent      = "api.user_agent"
	KeyAPIAccessToken    = "api.access_token"
	KeyAPITimeoutSeconds = "api.timeout_seconds"
	KeyAPIRequestsPerSec = "api.requests_per_second"
	KeyFetchMaxPages     = "fetch.max_pages"
	KeyFetchPerPage      = "fetch.per_page"
	KeyStorageBackend    = "storage.backend"
	KeyStoragePath       = "storage.path"
)

// Defaults applied when a key is absent from the config file.
const (
	DefaultAPIBaseURL     = "https://api.hh.ru/vacancies"
	DefaultAPIUserAgent   = "HH-User-Agent"
	DefaultAPITimeout     = 30 * time.Second
	DefaultMaxPages       = 20
	DefaultPerPage        = 100
	DefaultStorageBackend = StorageBackendJSON
)

// APISettings configures the HeadHunter client.
type APISettings struct {
	BaseURL     string
	UserAgent   string
	AccessToken string
	Timeout     time.Duration

	// RequestsPerSecond paces page requests. 0 disables pacing.
	RequestsPerSecond float64
}

// FetchSettings bounds pagination.
type FetchSettings struct {
	MaxPages int
	PerPage  int
}

// StorageSettings locates the vacancy store.
type StorageSettings struct {
	Backend StorageBackend
	Path    string
}

// Settings is the fully resolved runtime configuration.
type Settings struct {
	API     APISettings
	Fetch   FetchSettings
	Storage StorageSettings
}

// Validate checks the settings for values the adapters cannot work with.
func (s Settings) Validate() error {
	if s.API.BaseURL == "" {
		return ErrInvalidInput
	}
	if s.Fetch.MaxPages <= 0 || s.Fetch.PerPage <= 0 {
		return ErrInvalidInput
	}
	if s.API.RequestsPerSecond < 0 {
		return ErrInvalidInput
	}
	if !s.Storage.Backend.IsValid() {
		return ErrUnsupportedBackend
	}
	return nil
}

// SettingKeys lists every key the config store may hold.
func SettingKeys() []string {
	return []string{
		KeyAPIBaseURL,
		KeyAPIUserAgent,
		KeyAPIAccessToken,
		KeyAPITimeoutSeconds,
		KeyAPIRequestsPerSec,
		KeyFetchMaxPages,
		KeyFetchPerPage,
		KeyStorageBackend,
		KeyStoragePath,
	}
}

// IsSettingKey reports whether key is recognised.
func IsSettingKey(key string) bool {
	for _, k := range SettingKeys() {
		if k == key {
			return true
		}
	}
	return false
}
