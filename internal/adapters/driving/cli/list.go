package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	listWatch bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved vacancies",
	Long: `Prints every vacancy in the store.

With --watch the list is printed again whenever the store changes,
until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output vacancies as JSON")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "re-print when the store changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if vacancyService == nil {
		return errNoVacancyService
	}

	if err := printList(cmd); err != nil {
		return err
	}
	if !listWatch {
		return nil
	}

	if storeWatcher == nil {
		return errors.New("the configured storage backend does not support --watch")
	}
	changes, err := storeWatcher.Watch(cmd.Context())
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}
	for range changes {
		cmd.Println()
		if err := printList(cmd); err != nil {
			return err
		}
	}
	return nil
}

func printList(cmd *cobra.Command) error {
	result, err := vacancyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list vacancies: %w", err)
	}
	return outputStore(cmd, result, vacancyService.StorePath(), listJSON)
}
