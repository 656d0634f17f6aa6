package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alina998/hh-project/internal/adapters/driven/storage/jsonfile"
	"github.com/Alina998/hh-project/internal/adapters/driven/storage/memory"
	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/services"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// mockListingSource implements driven.ListingSource for testing.
type mockListingSource struct {
	listings []domain.RawListing
	err      error
}

func (m *mockListingSource) Fetch(_ context.Context, _ string) ([]domain.RawListing, error) {
	return m.listings, m.err
}

// mockWatcher implements driven.StoreWatcher with a prepared channel.
type mockWatcher struct {
	changes chan struct{}
}

func (m *mockWatcher) Watch(_ context.Context) (<-chan struct{}, error) {
	return m.changes, nil
}

func rawListing(name, city, requirement string, from, to int) domain.RawListing {
	return domain.RawListing{
		Name:         strPtr(name),
		Area:         &domain.RawArea{Name: strPtr(city)},
		Salary:       &domain.RawSalary{From: intPtr(from), To: intPtr(to), Currency: domain.CurrencyRUR},
		AlternateURL: strPtr("https://hh.ru/vacancy/" + name),
		Snippet:      &domain.RawSnippet{Requirement: strPtr(requirement)},
	}
}

func defaultListings() []domain.RawListing {
	return []domain.RawListing{
		rawListing("Python Developer", "Moscow", "Django and <highlighttext>SQL</highlighttext>", 100000, 150000),
		rawListing("Go Developer", "Kazan", "Go and Kubernetes", 200000, 0),
		rawListing("Data Engineer", "Moscow", "Spark and SQL", 0, 0),
	}
}

type testEnv struct {
	source    *mockListingSource
	store     *jsonfile.Store
	storePath string
}

// setupTestServices wires real services to a mock source and a JSON store
// in a temporary directory.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	storePath := filepath.Join(dir, "fitting_vacancies.json")
	store, err := jsonfile.NewStore(storePath)
	require.NoError(t, err)

	source := &mockListingSource{listings: defaultListings()}

	oldVacancy, oldSettings, oldWatcher, oldFactory := vacancyService, settingsService, storeWatcher, serviceFactory
	vacancyService = services.NewVacancyService(source, store)
	settingsService = services.NewSettingsService(memory.NewConfigStore(), dir)
	storeWatcher = nil
	serviceFactory = nil
	t.Cleanup(func() {
		vacancyService, settingsService, storeWatcher, serviceFactory = oldVacancy, oldSettings, oldWatcher, oldFactory
	})

	return &testEnv{source: source, store: store, storePath: storePath}
}

// resetFlags restores command flags to their defaults, since cobra keeps
// parsed values in package variables between executions.
func resetFlags() {
	searchTop, searchKeywords, searchSave, searchJSON = 0, "", false, false
	listJSON, listWatch = false, false
	findJSON = false
	verbose = false
	globalOpts = Options{}
}

// runCommand executes the root command and returns stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := execute(context.Background())
	return stdout.String(), stderr.String(), err
}
