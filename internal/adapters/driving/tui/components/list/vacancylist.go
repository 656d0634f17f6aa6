// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alina998/hh-project/internal/adapters/driving/render"
	"github.com/Alina998/hh-project/internal/adapters/driving/tui/styles"
	"github.com/Alina998/hh-project/internal/core/domain"
)

// linesPerVacancy is the height of one rendered entry.
const linesPerVacancy = 3

// VacancyList displays vacancies in a navigable list.
type VacancyList struct {
	vacancies []domain.Vacancy
	selected  int
	styles    *styles.Styles
	width     int
	height    int
}

// NewVacancyList creates a new vacancy list component.
func NewVacancyList(s *styles.Styles) *VacancyList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &VacancyList{
		styles: s,
		width:  80,
		height: 15,
	}
}

// Update handles list navigation messages.
func (l *VacancyList) Update(msg tea.Msg) (*VacancyList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of the list around the selection.
func (l *VacancyList) View() string {
	if len(l.vacancies) == 0 {
		return l.styles.Muted.Render("No vacancies found")
	}

	lines := make([]string, 0, len(l.vacancies)*linesPerVacancy+2)
	header := l.styles.Subtitle.Render(fmt.Sprintf("Top vacancies (%d)", len(l.vacancies)))
	lines = append(lines, header, "")

	visible := (l.height - 2) / linesPerVacancy
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.vacancies) {
		end = len(l.vacancies)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderVacancy(i, &l.vacancies[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *VacancyList) renderVacancy(index int, v *domain.Vacancy) string {
	maxLen := l.width - 6
	if maxLen < 20 {
		maxLen = 20
	}

	title := render.Truncate(fmt.Sprintf("%d. %s (%s)", index+1, v.Name, v.City), maxLen)
	if index == l.selected {
		title = l.styles.Selected.Render("> " + title)
	} else {
		title = l.styles.Normal.Render("  " + title)
	}

	meta := l.styles.Muted.Render("    " + render.Salary(v.Salary) + "  " + v.URL)
	desc := l.styles.Muted.Render("    " + render.Truncate(render.Description(*v), maxLen))
	return title + "\n" + meta + "\n" + desc
}

// SetVacancies replaces the list contents and resets the selection.
func (l *VacancyList) SetVacancies(vacancies []domain.Vacancy) {
	l.vacancies = vacancies
	l.selected = 0
}

// Vacancies returns the current contents.
func (l *VacancyList) Vacancies() []domain.Vacancy {
	return l.vacancies
}

// Selected returns the index of the selected vacancy.
func (l *VacancyList) Selected() int {
	return l.selected
}

// SelectedVacancy returns the selected vacancy, or nil if the list is empty.
func (l *VacancyList) SelectedVacancy() *domain.Vacancy {
	if l.selected < 0 || l.selected >= len(l.vacancies) {
		return nil
	}
	return &l.vacancies[l.selected]
}

// MoveUp moves selection up.
func (l *VacancyList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *VacancyList) MoveDown() {
	if l.selected < len(l.vacancies)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *VacancyList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of vacancies.
func (l *VacancyList) Count() int {
	return len(l.vacancies)
}
