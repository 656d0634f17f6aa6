package domain

import "strings"

// CurrencyRUR is the only currency whose salaries are kept.
const CurrencyRUR = "RUR"

// Vacancy is the canonical representation of a listing after normalisation.
// It is the only entity the store persists. Values are never mutated once built.
type Vacancy struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Salary      Salary  `json:"salary"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

// Salary is the published salary fork. Missing bounds are 0.
type Salary struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Equal reports whether two vacancies are structurally identical.
// Two nil descriptions are equal; nil never equals an empty string.
func (v Vacancy) Equal(other Vacancy) bool {
	if v.Name != other.Name || v.City != other.City || v.URL != other.URL {
		return false
	}
	if v.Salary != other.Salary {
		return false
	}
	switch {
	case v.Description == nil && other.Description == nil:
		return true
	case v.Description == nil || other.Description == nil:
		return false
	default:
		return *v.Description == *other.Description
	}
}

// DescriptionText returns the description or "" when it is null.
func (v Vacancy) DescriptionText() string {
	if v.Description == nil {
		return ""
	}
	return *v.Description
}

// ContainsVacancy reports whether list holds a vacancy equal to v.
func ContainsVacancy(list []Vacancy, v Vacancy) bool {
	for i := range list {
		if list[i].Equal(v) {
			return true
		}
	}
	return false
}

// Mentions reports whether substr occurs in the city, the name or the
// description. A null description mentions nothing.
func (v Vacancy) Mentions(substr string) bool {
	if strings.Contains(v.City, substr) || strings.Contains(v.Name, substr) {
		return true
	}
	return v.Description != nil && strings.Contains(*v.Description, substr)
}

// MatchesQuery reports whether substr occurs in the description or equals
// the name or the city exactly.
func (v Vacancy) MatchesQuery(substr string) bool {
	if v.Description != nil && strings.Contains(*v.Description, substr) {
		return true
	}
	return v.Name == substr || v.City == substr
}

// MergeAppend appends each incoming vacancy not already in existing,
// including ones appended earlier in the same call. It returns the merged
// list and how many were added. existing is not modified.
func MergeAppend(existing, incoming []Vacancy) ([]Vacancy, int) {
	merged := make([]Vacancy, len(existing), len(existing)+len(incoming))
	copy(merged, existing)
	added := 0
	for i := range incoming {
		if !ContainsVacancy(merged, incoming[i]) {
			merged = append(merged, incoming[i])
			added++
		}
	}
	return merged, added
}

// WithoutMentions returns the vacancies that do not mention substr.
func WithoutMentions(vacancies []Vacancy, substr string) []Vacancy {
	kept := make([]Vacancy, 0, len(vacancies))
	for i := range vacancies {
		if !vacancies[i].Mentions(substr) {
			kept = append(kept, vacancies[i])
		}
	}
	return kept
}

// MatchingQuery returns the vacancies for which MatchesQuery holds.
func MatchingQuery(vacancies []Vacancy, substr string) []Vacancy {
	found := make([]Vacancy, 0)
	for i := range vacancies {
		if vacancies[i].MatchesQuery(substr) {
			found = append(found, vacancies[i])
		}
	}
	return found
}
