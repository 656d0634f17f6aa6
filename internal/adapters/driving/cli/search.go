package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alina998/hh-project/internal/core/domain"
)

var (
	searchTop      int
	searchKeywords string
	searchSave     bool
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search hh.ru vacancies",
	Long: `Fetches vacancies matching the query from hh.ru and keeps those whose
requirements contain any of the given keywords.

Listings paid in a currency other than RUR are skipped. Keywords are matched
case-sensitively; a vacancy matching several keywords is listed once per match.

Examples:
  hhvac search "python developer" -k "Django SQL" -n 10
  hhvac search golang -k Go --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchTop, "top", "n", 0, "number of vacancies to show (0 = all)")
	searchCmd.Flags().StringVarP(&searchKeywords, "keywords", "k", "", "space-separated keywords to look for in requirements")
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "merge the results into the vacancy store")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if vacancyService == nil {
		return errNoVacancyService
	}

	req := domain.SearchRequest{
		Query:    args[0],
		TopN:     searchTop,
		Keywords: strings.Fields(searchKeywords),
	}

	results, err := vacancyService.Search(cmd.Context(), req)
	if err != nil {
		if len(results) == 0 {
			return fmt.Errorf("search failed: %w", err)
		}
		cmd.PrintErrf("Warning: results may be incomplete: %v\n", err)
	}

	if searchJSON {
		if err := outputVacanciesJSON(cmd, results); err != nil {
			return err
		}
	} else {
		outputSearchResults(cmd, req, results)
	}

	if !searchSave {
		return nil
	}
	saved, err := vacancyService.Save(cmd.Context(), results)
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	if !searchJSON {
		outputSaveResult(cmd, saved)
	}
	return nil
}

func outputSearchResults(cmd *cobra.Command, req domain.SearchRequest, results []domain.Vacancy) {
	if len(req.Keywords) == 0 {
		cmd.Println("No keywords given; use -k to choose which requirements to keep.")
		return
	}
	if len(results) == 0 {
		cmd.Println("No vacancies found.")
		return
	}

	cmd.Println("Top vacancies:")
	cmd.Println()
	outputVacancies(cmd, results)
}
