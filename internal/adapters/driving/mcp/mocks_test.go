package mcp

import (
	"context"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// mockVacancyService is a mock implementation of driving.VacancyService.
type mockVacancyService struct {
	results   []domain.Vacancy
	searchErr error
	saveRes   domain.SaveResult
	store     domain.StoreResult
	err       error

	lastRequest domain.SearchRequest
	lastSubstr  string
	saved       []domain.Vacancy
}

func (m *mockVacancyService) Search(_ context.Context, req domain.SearchRequest) ([]domain.Vacancy, error) {
	m.lastRequest = req
	return m.results, m.searchErr
}

func (m *mockVacancyService) Save(_ context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error) {
	m.saved = vacancies
	return m.saveRes, m.err
}

func (m *mockVacancyService) List(_ context.Context) (domain.StoreResult, error) {
	return m.store, m.err
}

func (m *mockVacancyService) Find(_ context.Context, substr string) (domain.StoreResult, error) {
	m.lastSubstr = substr
	return m.store, m.err
}

func (m *mockVacancyService) Delete(_ context.Context, substr string) (domain.StoreResult, error) {
	m.lastSubstr = substr
	return m.store, m.err
}

func (m *mockVacancyService) StorePath() string {
	return "/tmp/vacancies.json"
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Raw() map[string]any {
	return nil
}

func (m *mockSettingsService) ConfigPath() string {
	return "/tmp/config.toml"
}

func strPtr(s string) *string { return &s }

func goVacancy() domain.Vacancy {
	return domain.Vacancy{
		Name:        "Go developer",
		City:        "Москва",
		Salary:      domain.Salary{From: 200000, To: 300000},
		URL:         "https://hh.ru/vacancy/1",
		Description: strPtr("Опыт Go от 3 лет"),
	}
}
