package services

import (
	"context"
	"fmt"

	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/core/ports/driving"
	"github.com/Alina998/hh-project/internal/logger"
)

// Ensure VacancyService implements the interface.
var _ driving.VacancyService = (*VacancyService)(nil)

// VacancyService runs the fetch, normalise, filter and truncate pipeline and
// fronts the vacancy store.
type VacancyService struct {
	source driven.ListingSource
	store  driven.VacancyStore
}

// NewVacancyService creates a new vacancy service.
// source may be nil when only store operations are needed.
func NewVacancyService(source driven.ListingSource, store driven.VacancyStore) *VacancyService {
	return &VacancyService{
		source: source,
		store:  store,
	}
}

// Search fetches listings for req.Query and returns the top req.TopN
// vacancies whose description contains any of req.Keywords.
//
// When the fetch fails part-way, Search still filters what was fetched and
// returns it together with the error.
func (s *VacancyService) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Vacancy, error) {
	if s.source == nil {
		return nil, fmt.Errorf("listing source: %w", domain.ErrServiceUnavailable)
	}

	logger.Section("Search")
	logger.Debug("Query: %q, top: %d, keywords: %q", req.Query, req.TopN, req.Keywords)

	listings, fetchErr := s.source.Fetch(ctx, req.Query)
	logger.Info("Fetched %d listings", len(listings))
	if fetchErr != nil {
		logger.Warn("Fetch stopped early: %v", fetchErr)
	}

	vacancies, err := Normalise(listings)
	if err != nil {
		return nil, fmt.Errorf("normalise: %w", err)
	}
	logger.Debug("Normalised %d vacancies (%d dropped)", len(vacancies), len(listings)-len(vacancies))

	filtered := FilterByKeywords(vacancies, req.Keywords)
	logger.Debug("Keyword filter kept %d", len(filtered))

	top := TopN(filtered, req.TopN)
	logger.Info("Returning %d vacancies", len(top))

	if fetchErr != nil {
		return top, fmt.Errorf("fetch: %w", fetchErr)
	}
	return top, nil
}

// Save merges vacancies into the store.
func (s *VacancyService) Save(ctx context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error) {
	if s.store == nil {
		return domain.SaveResult{}, fmt.Errorf("vacancy store: %w", domain.ErrServiceUnavailable)
	}

	result, err := s.store.MergeWrite(ctx, vacancies)
	if err != nil {
		return result, fmt.Errorf("save vacancies: %w", err)
	}
	logger.Debug("Save %s: added %d, total %d", result.Status, result.Added, result.Total)
	return result, nil
}

// List returns every stored vacancy.
func (s *VacancyService) List(ctx context.Context) (domain.StoreResult, error) {
	if s.store == nil {
		return domain.StoreResult{}, fmt.Errorf("vacancy store: %w", domain.ErrServiceUnavailable)
	}
	return s.store.Load(ctx)
}

// Find returns stored vacancies matching substr.
func (s *VacancyService) Find(ctx context.Context, substr string) (domain.StoreResult, error) {
	if s.store == nil {
		return domain.StoreResult{}, fmt.Errorf("vacancy store: %w", domain.ErrServiceUnavailable)
	}
	return s.store.Find(ctx, substr)
}

// Delete removes stored vacancies matching substr.
func (s *VacancyService) Delete(ctx context.Context, substr string) (domain.StoreResult, error) {
	if s.store == nil {
		return domain.StoreResult{}, fmt.Errorf("vacancy store: %w", domain.ErrServiceUnavailable)
	}
	if substr == "" {
		// Every string contains "", so this would wipe the store.
		return domain.StoreResult{}, fmt.Errorf("empty delete pattern: %w", domain.ErrInvalidInput)
	}
	return s.store.DeleteMatching(ctx, substr)
}

// StorePath returns where vacancies are saved.
func (s *VacancyService) StorePath() string {
	if s.store == nil {
		return ""
	}
	return s.store.Path()
}
