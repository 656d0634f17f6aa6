package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [substring]",
	Short: "Delete saved vacancies",
	Long: `Removes every saved vacancy whose name, city or requirement contains the
substring. Matching is case-sensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if vacancyService == nil {
		return errNoVacancyService
	}

	path := vacancyService.StorePath()
	kept, err := vacancyService.Delete(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if kept.Absent() {
		cmd.Printf("Store %s does not exist.\n", path)
		return nil
	}

	cmd.Printf("%d vacancies remain in %s\n", len(kept.Vacancies), path)
	return nil
}
