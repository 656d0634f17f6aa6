package driven

import (
	"context"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// VacancyStore persists canonical vacancies.
//
// Every call is a complete read-modify-write of the backing storage.
// Implementations assume a single writer: two processes merging into the
// same store at once can lose data.
type VacancyStore interface {
	// Load returns every stored vacancy, or an absent result.
	Load(ctx context.Context) (domain.StoreResult, error)

	// MergeWrite appends vacancies not already present.
	// Empty input performs no I/O and reports SaveNothingToSave.
	MergeWrite(ctx context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error)

	// DeleteMatching removes vacancies whose name, city or description
	// contains substr and returns the kept set.
	DeleteMatching(ctx context.Context, substr string) (domain.StoreResult, error)

	// Find returns vacancies whose description contains substr or whose
	// name or city equals it exactly.
	Find(ctx context.Context, substr string) (domain.StoreResult, error)

	// Path returns the location of the backing storage.
	Path() string
}

// StoreWatcher reports changes made to a store by other processes.
type StoreWatcher interface {
	// Watch sends on the returned channel after each change until ctx ends.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
