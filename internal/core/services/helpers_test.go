package services

import (
	"context"

	"github.com/Alina998/hh-project/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// listing builds a complete raw listing.
func listing(name, city, url string, requirement *string, salary *domain.RawSalary) domain.RawListing {
	return domain.RawListing{
		Name:         strPtr(name),
		Area:         &domain.RawArea{Name: strPtr(city)},
		Salary:       salary,
		AlternateURL: strPtr(url),
		Snippet:      &domain.RawSnippet{Requirement: requirement},
	}
}

func vacancy(name, city, description string) domain.Vacancy {
	return domain.Vacancy{
		Name:        name,
		City:        city,
		URL:         "https://hh.ru/vacancy/" + name,
		Description: strPtr(description),
	}
}

// mockListingSource implements driven.ListingSource for testing.
type mockListingSource struct {
	listings []domain.RawListing
	err      error
	keywords []string
}

func (m *mockListingSource) Fetch(_ context.Context, keyword string) ([]domain.RawListing, error) {
	m.keywords = append(m.keywords, keyword)
	return m.listings, m.err
}
