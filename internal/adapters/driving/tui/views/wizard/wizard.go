// Package wizard provides the step-by-step search view for the TUI.
//
// The wizard asks for a query, how many vacancies to show and which
// keywords to keep, runs the search, shows the results and finally asks
// whether to save them.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Alina998/hh-project/internal/adapters/driving/tui/components/input"
	"github.com/Alina998/hh-project/internal/adapters/driving/tui/components/list"
	"github.com/Alina998/hh-project/internal/adapters/driving/tui/components/status"
	"github.com/Alina998/hh-project/internal/adapters/driving/tui/keymap"
	"github.com/Alina998/hh-project/internal/adapters/driving/tui/messages"
	"github.com/Alina998/hh-project/internal/adapters/driving/tui/styles"
	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driving"
)

// Step identifies where the wizard is.
type Step int

const (
	StepQuery Step = iota
	StepTopN
	StepKeywords
	StepSearching
	StepResults
	StepSaving
	StepDone
)

// String returns the string representation of the step.
func (s Step) String() string {
	switch s {
	case StepQuery:
		return "query"
	case StepTopN:
		return "top_n"
	case StepKeywords:
		return "keywords"
	case StepSearching:
		return "searching"
	case StepResults:
		return "results"
	case StepSaving:
		return "saving"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

const (
	labelQuery    = "Search query"
	labelTopN     = "How many vacancies to show (blank = all)"
	labelKeywords = "Keywords to look for in requirements (space-separated)"
)

// View is the wizard view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.VacancyList
	statusbar *status.Bar

	service driving.VacancyService
	ctx     context.Context

	step    Step
	request domain.SearchRequest
	results []domain.Vacancy
	warning string
	outcome string
	err     error
}

// NewView creates a new wizard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.VacancyService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewField(s, labelQuery, "python developer"),
		list:      list.NewVacancyList(s),
		statusbar: status.NewBar(s),
		service:   service,
		ctx:       context.Background(),
		step:      StepQuery,
	}
	v.statusbar.SetHints(km.InputHelp())
	return v
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the wizard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.SaveCompleted:
		v.handleSaveCompleted(msg)
		return v, nil
	}

	if v.isInputStep() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) isInputStep() bool {
	return v.step == StepQuery || v.step == StepTopN || v.step == StepKeywords
}

// handleKeyMsg processes keyboard input for the current step.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch v.step {
	case StepQuery, StepTopN, StepKeywords:
		switch {
		case keymap.Matches(keyStr, v.keymap.Confirm):
			return v.submit()
		case keymap.Matches(keyStr, v.keymap.Back):
			return v.back()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case StepResults:
		switch {
		case keymap.Matches(keyStr, v.keymap.Yes):
			v.step = StepSaving
			v.statusbar.SetState(status.StateSaving, "")
			v.statusbar.SetHints(nil)
			return v, v.performSave()
		case keymap.Matches(keyStr, v.keymap.No):
			v.finish("Vacancies were not saved.")
			return v, nil
		case keymap.Matches(keyStr, v.keymap.Back):
			return v.back()
		}
		v.list, _ = v.list.Update(msg)
		return v, nil

	case StepDone:
		switch {
		case keymap.Matches(keyStr, v.keymap.NewSearch):
			return v, v.Reset()
		case keyStr == "q", keymap.Matches(keyStr, v.keymap.Back):
			return v, quit
		}

	case StepSearching, StepSaving:
		// Waiting for the service.
	}

	return v, nil
}

// submit validates the current answer and moves to the next step.
func (v *View) submit() (*View, tea.Cmd) {
	value := strings.TrimSpace(v.input.Value())
	v.err = nil

	switch v.step {
	case StepQuery:
		if value == "" {
			v.err = ErrEmptyQuery
			return v, nil
		}
		v.request.Query = value
		v.step = StepTopN
		return v, v.input.Ask(labelTopN, "10")

	case StepTopN:
		n := 0
		if value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				v.err = ErrInvalidTopN
				return v, nil
			}
			n = parsed
		}
		v.request.TopN = n
		v.step = StepKeywords
		return v, v.input.Ask(labelKeywords, "Django SQL")

	case StepKeywords:
		v.request.Keywords = strings.Fields(value)
		v.step = StepSearching
		v.input.Blur()
		v.statusbar.SetState(status.StateSearching, "")
		v.statusbar.SetHints(nil)
		return v, v.performSearch()

	case StepSearching, StepResults, StepSaving, StepDone:
	}
	return v, nil
}

// back returns to the previous question. Backing out of the first
// question quits.
func (v *View) back() (*View, tea.Cmd) {
	v.err = nil
	switch v.step {
	case StepQuery:
		return v, quit
	case StepTopN:
		v.step = StepQuery
		cmd := v.input.Ask(labelQuery, "python developer")
		v.input.SetValue(v.request.Query)
		return v, cmd
	case StepKeywords:
		v.step = StepTopN
		cmd := v.input.Ask(labelTopN, "10")
		if v.request.TopN != 0 {
			v.input.SetValue(strconv.Itoa(v.request.TopN))
		}
		return v, cmd
	case StepResults:
		v.step = StepKeywords
		v.warning = ""
		v.statusbar.SetState(status.StateReady, "")
		v.statusbar.SetHints(v.keymap.InputHelp())
		cmd := v.input.Ask(labelKeywords, "Django SQL")
		v.input.SetValue(strings.Join(v.request.Keywords, " "))
		return v, cmd
	case StepSearching, StepSaving, StepDone:
	}
	return v, nil
}

// Reset starts a new search from the first question.
func (v *View) Reset() tea.Cmd {
	v.step = StepQuery
	v.request = domain.SearchRequest{}
	v.results = nil
	v.warning = ""
	v.outcome = ""
	v.err = nil
	v.list.SetVacancies(nil)
	v.statusbar.SetState(status.StateReady, "")
	v.statusbar.SetHints(v.keymap.InputHelp())
	return v.input.Ask(labelQuery, "python developer")
}

func (v *View) performSearch() tea.Cmd {
	req := v.request
	return func() tea.Msg {
		if v.service == nil {
			return messages.SearchCompleted{Err: ErrNoVacancyService}
		}
		results, err := v.service.Search(v.ctx, req)
		return messages.SearchCompleted{Vacancies: results, Err: err}
	}
}

func (v *View) performSave() tea.Cmd {
	results := v.results
	return func() tea.Msg {
		if v.service == nil {
			return messages.SaveCompleted{Err: ErrNoVacancyService}
		}
		result, err := v.service.Save(v.ctx, results)
		return messages.SaveCompleted{Result: result, Err: err}
	}
}

// handleSearchCompleted shows results, or returns to the keywords step
// when the search failed without producing anything.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil && len(msg.Vacancies) == 0 {
		v.err = msg.Err
		v.step = StepKeywords
		v.statusbar.SetState(status.StateError, msg.Err.Error())
		v.statusbar.SetHints(v.keymap.InputHelp())
		v.input.Ask(labelKeywords, "Django SQL")
		v.input.SetValue(strings.Join(v.request.Keywords, " "))
		return
	}

	v.warning = ""
	if msg.Err != nil {
		v.warning = "Results may be incomplete: " + msg.Err.Error()
	}
	v.results = msg.Vacancies
	v.list.SetVacancies(msg.Vacancies)
	v.step = StepResults
	v.statusbar.SetState(status.StateResults, fmt.Sprintf("%d vacancies", len(msg.Vacancies)))
	v.statusbar.SetHints(v.keymap.ResultsHelp())
}

func (v *View) handleSaveCompleted(msg messages.SaveCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.finish("")
		v.statusbar.SetState(status.StateError, msg.Err.Error())
		return
	}

	switch msg.Result.Status {
	case domain.SaveNothingToSave:
		v.finish("No vacancies match these criteria, nothing to save.")
	case domain.SaveCreated:
		v.finish(fmt.Sprintf("Saved %d vacancies to %s", msg.Result.Added, msg.Result.Path))
		v.statusbar.SetState(status.StateSaved, "Saved")
	case domain.SaveMerged:
		v.finish(fmt.Sprintf("Added %d new vacancies to %s (%d total)",
			msg.Result.Added, msg.Result.Path, msg.Result.Total))
		v.statusbar.SetState(status.StateSaved, "Saved")
	}
}

func (v *View) finish(outcome string) {
	v.outcome = outcome
	v.step = StepDone
	v.statusbar.SetState(status.StateReady, "")
	v.statusbar.SetHints(v.keymap.DoneHelp())
}

func quit() tea.Msg {
	return messages.Quit{}
}

// View renders the wizard.
func (v *View) View() string {
	sections := make([]string, 0, 12)
	sections = append(sections,
		v.styles.Title.Render("hhvac")+" "+v.styles.Muted.Render("hh.ru vacancy search"), "")

	if summary := v.renderSummary(); summary != "" {
		sections = append(sections, summary, "")
	}

	switch v.step {
	case StepQuery, StepTopN, StepKeywords:
		sections = append(sections, v.input.View())
	case StepSearching:
		sections = append(sections, v.styles.Muted.Render(fmt.Sprintf("Searching hh.ru for %q...", v.request.Query)))
	case StepResults:
		sections = append(sections, v.list.View(), "",
			v.styles.Prompt.Render("Save these vacancies? (y/n)"))
	case StepSaving:
		sections = append(sections, v.styles.Muted.Render("Saving..."))
	case StepDone:
		if v.outcome != "" {
			sections = append(sections, v.styles.Success.Render(v.outcome))
		}
	}

	if v.warning != "" && (v.step == StepResults || v.step == StepDone) {
		sections = append(sections, "", v.styles.Warning.Render(v.warning))
	}
	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSummary lists the answers given so far.
func (v *View) renderSummary() string {
	var lines []string
	if v.step > StepQuery && v.request.Query != "" {
		lines = append(lines, "Query:    "+v.request.Query)
	}
	if v.step > StepTopN {
		top := "all"
		if v.request.TopN > 0 {
			top = strconv.Itoa(v.request.TopN)
		}
		lines = append(lines, "Top:      "+top)
	}
	if v.step > StepKeywords {
		keywords := strings.Join(v.request.Keywords, ", ")
		if keywords == "" {
			keywords = "(none, nothing will match)"
		}
		lines = append(lines, "Keywords: "+keywords)
	}
	if len(lines) == 0 {
		return ""
	}
	return v.styles.Muted.Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.input.SetWidth(width)
	// Header, summary, prompt and status bar take about ten lines
	listHeight := height - 10
	if listHeight < 4 {
		listHeight = 4
	}
	v.list.SetDimensions(width, listHeight)
	v.statusbar.SetWidth(width)
}

// Step returns the current step.
func (v *View) Step() Step {
	return v.step
}

// Request returns the answers collected so far.
func (v *View) Request() domain.SearchRequest {
	return v.request
}

// Results returns the vacancies of the last search.
func (v *View) Results() []domain.Vacancy {
	return v.results
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}

// Outcome returns the message shown after the save prompt.
func (v *View) Outcome() string {
	return v.outcome
}
