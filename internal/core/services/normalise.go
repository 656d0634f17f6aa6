package services

import (
	"fmt"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// Normalise converts raw listings into canonical vacancies, in order.
//
// A listing without a salary gets a 0/0 salary. A listing paid in RUR keeps
// its bounds, with a missing bound read as 0. A listing in any other
// currency is dropped. A listing missing a required field fails the whole
// call with domain.ErrMissingField.
func Normalise(listings []domain.RawListing) ([]domain.Vacancy, error) {
	result := make([]domain.Vacancy, 0, len(listings))
	for i := range listings {
		listing := &listings[i]

		var salary domain.Salary
		if listing.Salary != nil {
			if listing.Salary.Currency != domain.CurrencyRUR {
				continue
			}
			salary = domain.Salary{
				From: intOrZero(listing.Salary.From),
				To:   intOrZero(listing.Salary.To),
			}
		}

		v, err := newVacancy(listing, salary)
		if err != nil {
			return nil, fmt.Errorf("listing %d: %w", i, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func newVacancy(listing *domain.RawListing, salary domain.Salary) (domain.Vacancy, error) {
	switch {
	case listing.Name == nil:
		return domain.Vacancy{}, missing("name")
	case listing.Area == nil:
		return domain.Vacancy{}, missing("area")
	case listing.Area.Name == nil:
		return domain.Vacancy{}, missing("area.name")
	case listing.AlternateURL == nil:
		return domain.Vacancy{}, missing("alternate_url")
	case listing.Snippet == nil:
		return domain.Vacancy{}, missing("snippet")
	}

	var description *string
	if listing.Snippet.Requirement != nil {
		d := *listing.Snippet.Requirement
		description = &d
	}

	return domain.Vacancy{
		Name:        *listing.Name,
		City:        *listing.Area.Name,
		Salary:      salary,
		URL:         *listing.AlternateURL,
		Description: description,
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("%s: %w", field, domain.ErrMissingField)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
