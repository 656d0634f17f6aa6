package driving

import (
	"context"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// VacancyService searches HeadHunter and manages the local vacancy store.
type VacancyService interface {
	// Search fetches listings for the query, normalises them, filters them
	// by keyword and truncates to the requested top N.
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Vacancy, error)

	// Save merges vacancies into the store.
	Save(ctx context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error)

	// List returns the whole store.
	List(ctx context.Context) (domain.StoreResult, error)

	// Find returns stored vacancies matching substr.
	Find(ctx context.Context, substr string) (domain.StoreResult, error)

	// Delete removes stored vacancies matching substr and returns the rest.
	Delete(ctx context.Context, substr string) (domain.StoreResult, error)

	// StorePath returns where vacancies are saved.
	StorePath() string
}
