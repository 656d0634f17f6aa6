package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// MockVacancyService implements driving.VacancyService for testing.
type MockVacancyService struct {
	SearchFunc func(ctx context.Context, req domain.SearchRequest) ([]domain.Vacancy, error)
	SaveFunc   func(ctx context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error)
}

func (m *MockVacancyService) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Vacancy, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockVacancyService) Save(ctx context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, vacancies)
	}
	return domain.SaveResult{Status: domain.SaveNothingToSave}, nil
}

func (m *MockVacancyService) List(context.Context) (domain.StoreResult, error) {
	return domain.AbsentResult(), nil
}

func (m *MockVacancyService) Find(context.Context, string) (domain.StoreResult, error) {
	return domain.AbsentResult(), nil
}

func (m *MockVacancyService) Delete(context.Context, string) (domain.StoreResult, error) {
	return domain.AbsentResult(), nil
}

func (m *MockVacancyService) StorePath() string {
	return "vacancies.json"
}

func TestNewPorts(t *testing.T) {
	svc := &MockVacancyService{}

	ports := NewPorts(svc)

	assert.Equal(t, svc, ports.Vacancy)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingVacancy(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingVacancyService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}
