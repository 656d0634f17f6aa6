package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Alina998/hh-project/internal/adapters/driving/tui"
	"github.com/Alina998/hh-project/internal/logger"
)

// isTerminal reports whether stdin is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Search step by step",
	Long: `Walks through a search interactively: enter the query, how many
vacancies to show and the keywords to keep, review the results, then choose
whether to save them.

Controls:
  Enter  - Confirm step
  Esc    - Back
  Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if vacancyService == nil {
		return errNoVacancyService
	}
	if !isTerminal() {
		return errors.New("interactive mode requires a terminal; use 'hhvac search' instead")
	}

	app, err := tui.NewApp(&tui.Ports{Vacancy: vacancyService})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	if err := withoutLogs(app.WithContext(cmd.Context()).Run); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// withoutLogs runs fn with log output discarded. Stray stderr lines would
// be drawn over the interactive view.
func withoutLogs(fn func() error) error {
	prev := logger.SetOutput(io.Discard)
	defer logger.SetOutput(prev)
	return fn()
}
