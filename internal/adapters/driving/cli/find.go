package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find [substring]",
	Short: "Find saved vacancies",
	Long: `Prints saved vacancies whose requirement contains the substring, or whose
name or city is exactly equal to it.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output vacancies as JSON")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if vacancyService == nil {
		return errNoVacancyService
	}

	result, err := vacancyService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}
	return outputStore(cmd, result, vacancyService.StorePath(), findJSON)
}
