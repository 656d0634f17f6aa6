// Package render formats vacancies for terminal output.
//
// Requirement snippets from hh.ru carry <highlighttext> markup around the
// matched query terms. Stored data keeps the markup; it is removed only
// when a vacancy is displayed.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// PlainText strips markup from s, decodes entities and collapses runs of
// whitespace.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Salary renders a salary fork. A zero bound means it was not published.
func Salary(s domain.Salary) string {
	switch {
	case s.From == 0 && s.To == 0:
		return "not specified"
	case s.To == 0:
		return fmt.Sprintf("from %d %s", s.From, domain.CurrencyRUR)
	case s.From == 0:
		return fmt.Sprintf("up to %d %s", s.To, domain.CurrencyRUR)
	default:
		return fmt.Sprintf("%d-%d %s", s.From, s.To, domain.CurrencyRUR)
	}
}

// Description returns the display text of a vacancy's requirement.
func Description(v domain.Vacancy) string {
	if v.Description == nil {
		return ""
	}
	return PlainText(*v.Description)
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 3 || len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
