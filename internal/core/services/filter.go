package services

import (
	"strings"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// FilterByKeyword keeps vacancies whose description contains keyword.
// Matching is a case-sensitive literal substring test; vacancies without a
// description never match. Order is preserved.
func FilterByKeyword(vacancies []domain.Vacancy, keyword string) []domain.Vacancy {
	result := make([]domain.Vacancy, 0)
	for i := range vacancies {
		if vacancies[i].Description == nil {
			continue
		}
		if strings.Contains(*vacancies[i].Description, keyword) {
			result = append(result, vacancies[i])
		}
	}
	return result
}

// FilterByKeywords applies FilterByKeyword once per keyword and concatenates
// the results. A vacancy matching several keywords appears once per match.
// No keywords means no results.
func FilterByKeywords(vacancies []domain.Vacancy, keywords []string) []domain.Vacancy {
	result := make([]domain.Vacancy, 0)
	for _, keyword := range keywords {
		result = append(result, FilterByKeyword(vacancies, keyword)...)
	}
	return result
}

// TopN returns the first n vacancies. It truncates; it does not sort.
// When n <= 0 the input is returned unchanged.
func TopN(vacancies []domain.Vacancy, n int) []domain.Vacancy {
	if n <= 0 || n >= len(vacancies) {
		return vacancies
	}
	return vacancies[:n]
}
