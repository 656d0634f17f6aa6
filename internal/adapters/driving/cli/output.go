package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alina998/hh-project/internal/adapters/driving/render"
	"github.com/Alina998/hh-project/internal/core/domain"
)

// outputVacanciesJSON prints vacancies in the store's document format, so
// snippet markup such as <highlighttext> is written as is.
func outputVacanciesJSON(cmd *cobra.Command, vacancies []domain.Vacancy) error {
	if vacancies == nil {
		vacancies = []domain.Vacancy{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(vacancies); err != nil {
		return fmt.Errorf("failed to marshal vacancies: %w", err)
	}
	return nil
}

func outputVacancies(cmd *cobra.Command, vacancies []domain.Vacancy) {
	for i := range vacancies {
		v := &vacancies[i]
		cmd.Printf("  [%d] %s (%s)\n", i+1, v.Name, v.City)
		cmd.Printf("      Salary: %s\n", render.Salary(v.Salary))
		cmd.Printf("      %s\n", v.URL)
		if desc := render.Description(*v); desc != "" {
			cmd.Printf("      %s\n", desc)
		}
		cmd.Println()
	}
}

// outputStore prints a store result. Absent and empty stores are reported
// in text mode; JSON mode prints an empty array for both.
func outputStore(cmd *cobra.Command, result domain.StoreResult, path string, asJSON bool) error {
	if asJSON {
		if result.Absent() {
			cmd.PrintErrf("Store %s does not exist.\n", path)
		}
		return outputVacanciesJSON(cmd, result.Vacancies)
	}

	switch result.State {
	case domain.StoreAbsent:
		cmd.Printf("Store %s does not exist.\n", path)
	case domain.StoreEmpty:
		cmd.Println("No vacancies found.")
	default:
		cmd.Printf("Vacancies (%d):\n\n", len(result.Vacancies))
		outputVacancies(cmd, result.Vacancies)
	}
	return nil
}

func outputSaveResult(cmd *cobra.Command, result domain.SaveResult) {
	switch result.Status {
	case domain.SaveNothingToSave:
		cmd.Println("No vacancies match these criteria, nothing to save.")
	case domain.SaveCreated:
		cmd.Printf("Saved %d vacancies to %s\n", result.Added, result.Path)
	default:
		cmd.Printf("Added %d new vacancies to %s (%d total)\n", result.Added, result.Path, result.Total)
	}
}
