package main

import (
	"fmt"
	"path/filepath"

	"github.com/Alina998/hh-project/internal/adapters/driven/config/file"
	"github.com/Alina998/hh-project/internal/adapters/driven/storage/jsonfile"
	"github.com/Alina998/hh-project/internal/adapters/driven/storage/memory"
	"github.com/Alina998/hh-project/internal/adapters/driven/storage/sqlite"
	"github.com/Alina998/hh-project/internal/adapters/driving/cli"
	"github.com/Alina998/hh-project/internal/connectors/headhunter"
	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/core/services"
	"github.com/Alina998/hh-project/internal/logger"
)

// buildServices wires configuration, storage and the hh.ru connector.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	dataDir := filepath.Join(filepath.Dir(configStore.Path()), "data")
	settingsService := services.NewSettingsService(configStore, dataDir)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	_, pathConfigured := settingsService.Raw()[domain.KeyStoragePath]
	if err := applyOverrides(settings, opts, dataDir, pathConfigured); err != nil {
		return nil, err
	}
	logger.Debug("Storage: %s at %s", settings.Storage.Backend, settings.Storage.Path)

	store, closeStore, err := openStore(settings.Storage)
	if err != nil {
		return nil, err
	}

	cfg := headhunter.ConfigFromSettings(settings)
	if err := cfg.Validate(); err != nil {
		if closeStore != nil {
			_ = closeStore()
		}
		return nil, fmt.Errorf("headhunter config: %w", err)
	}
	fetcher := headhunter.New(headhunter.NewHTTPClient(settings.API), cfg)

	result := &cli.Services{
		Vacancy:  services.NewVacancyService(fetcher, store),
		Settings: settingsService,
		Close:    closeStore,
	}
	if watcher, ok := store.(driven.StoreWatcher); ok {
		result.Watcher = watcher
	}
	return result, nil
}

// applyOverrides applies --backend and --store. A backend override also
// moves the default store file unless storage.path is set explicitly.
func applyOverrides(settings *domain.Settings, opts cli.Options, dataDir string, pathConfigured bool) error {
	if opts.Backend != "" {
		backend := domain.StorageBackend(opts.Backend)
		if !backend.IsValid() {
			return fmt.Errorf("--backend %q: %w", opts.Backend, domain.ErrUnsupportedBackend)
		}
		settings.Storage.Backend = backend
		if !pathConfigured {
			settings.Storage.Path = filepath.Join(dataDir, backend.DefaultFileName())
		}
	}
	if opts.StorePath != "" {
		settings.Storage.Path = opts.StorePath
	}
	return nil
}

// openStore creates the configured vacancy store. The returned close
// function is nil for backends that hold no resources.
func openStore(s domain.StorageSettings) (driven.VacancyStore, func() error, error) {
	switch s.Backend {
	case domain.StorageBackendSQLite:
		store, err := sqlite.NewStore(s.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	case domain.StorageBackendMemory:
		return memory.NewVacancyStore(), nil, nil
	case domain.StorageBackendJSON:
		store, err := jsonfile.NewStore(s.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open json store: %w", err)
		}
		return store, nil, nil
	default:
		return nil, nil, fmt.Errorf("%q: %w", s.Backend, domain.ErrUnsupportedBackend)
	}
}
