package memory

import (
	"context"
	"sync"

	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
)

// Location is reported as the path of every in-memory store.
const Location = ":memory:"

// Ensure VacancyStore implements the interface.
var _ driven.VacancyStore = (*VacancyStore)(nil)

// VacancyStore is an in-memory implementation of driven.VacancyStore.
// It reports an absent store until the first successful write.
type VacancyStore struct {
	mu        sync.RWMutex
	exists    bool
	vacancies []domain.Vacancy
}

// NewVacancyStore creates a new, absent, in-memory vacancy store.
func NewVacancyStore() *VacancyStore {
	return &VacancyStore{}
}

// Load returns every stored vacancy.
func (s *VacancyStore) Load(_ context.Context) (domain.StoreResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.exists {
		return domain.AbsentResult(), nil
	}
	return domain.NewStoreResult(s.snapshot()), nil
}

// MergeWrite appends vacancies not already present.
func (s *VacancyStore) MergeWrite(_ context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error) {
	if len(vacancies) == 0 {
		return domain.SaveResult{Status: domain.SaveNothingToSave, Path: Location}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists {
		s.exists = true
		s.vacancies = append([]domain.Vacancy(nil), vacancies...)
		return domain.SaveResult{Status: domain.SaveCreated, Added: len(vacancies), Total: len(s.vacancies), Path: Location}, nil
	}

	merged, added := domain.MergeAppend(s.vacancies, vacancies)
	s.vacancies = merged
	return domain.SaveResult{Status: domain.SaveMerged, Added: added, Total: len(s.vacancies), Path: Location}, nil
}

// DeleteMatching removes vacancies whose name, city or description contains substr.
func (s *VacancyStore) DeleteMatching(_ context.Context, substr string) (domain.StoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists {
		return domain.AbsentResult(), nil
	}

	kept := domain.WithoutMentions(s.vacancies, substr)
	s.vacancies = kept
	return domain.NewStoreResult(s.snapshot()), nil
}

// Find returns vacancies whose description contains substr or whose name or city equals it.
func (s *VacancyStore) Find(_ context.Context, substr string) (domain.StoreResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.exists {
		return domain.AbsentResult(), nil
	}

	found := domain.MatchingQuery(s.vacancies, substr)
	return domain.NewStoreResult(found), nil
}

// Path returns Location; nothing is written to disk.
func (s *VacancyStore) Path() string {
	return Location
}

// snapshot copies the slice (caller must hold lock).
func (s *VacancyStore) snapshot() []domain.Vacancy {
	out := make([]domain.Vacancy, len(s.vacancies))
	copy(out, s.vacancies)
	return out
}
