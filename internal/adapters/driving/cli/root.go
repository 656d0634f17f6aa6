// Package cli implements the hhvac command line.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/core/ports/driving"
	"github.com/Alina998/hh-project/internal/logger"
)

var version = "dev"

// Options holds the global flags that decide how services are built.
type Options struct {
	// ConfigDir overrides the configuration directory (default ~/.hhvac).
	ConfigDir string

	// StorePath overrides storage.path.
	StorePath string

	// Backend overrides storage.backend.
	Backend string
}

// Services are the ports the commands call.
type Services struct {
	Vacancy  driving.VacancyService
	Settings driving.SettingsService

	// Watcher is nil when the storage backend cannot report changes.
	Watcher driven.StoreWatcher

	// Close releases backend resources. May be nil.
	Close func() error
}

// ServiceFactory builds services once global flags have been parsed.
type ServiceFactory func(opts Options) (*Services, error)

var (
	vacancyService  driving.VacancyService
	settingsService driving.SettingsService
	storeWatcher    driven.StoreWatcher
	closeServices   func() error

	serviceFactory ServiceFactory
	globalOpts     Options
	verbose        bool
)

var errNoVacancyService = errors.New("vacancy service not configured")

var rootCmd = &cobra.Command{
	Use:   "hhvac",
	Short: "Search hh.ru vacancies and keep the ones that fit",
	Long: `hhvac searches the HeadHunter (hh.ru) vacancy API, keeps listings whose
requirements mention your keywords and saves the best ones to a local store.

Saved vacancies can be listed, searched and pruned later.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	flags.StringVar(&globalOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.hhvac)")
	flags.StringVar(&globalOpts.StorePath, "store", "", "vacancy store location (overrides storage.path)")
	flags.StringVar(&globalOpts.Backend, "backend", "", "storage backend: json, sqlite or memory")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the function that builds services for each run.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
// Output goes to stdout; cobra would otherwise print to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return execute(ctx)
}

// execute runs the root command and releases services whether or not the
// command failed. Cobra skips post-run hooks after an error.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := teardown(); err == nil {
		err = closeErr
	}
	return err
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if serviceFactory == nil {
		return nil
	}

	services, err := serviceFactory(globalOpts)
	if err != nil {
		return err
	}
	vacancyService = services.Vacancy
	settingsService = services.Settings
	storeWatcher = services.Watcher
	closeServices = services.Close
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}
