package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alina998/hh-project/internal/core/domain"
)

var errNoSettingsService = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change hhvac configuration.

Settings are kept in config.toml inside the configuration directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Flags must come before the key; everything after it is taken literally,
so negative numbers reach validation.

Available keys:
  ` + strings.Join(domain.SettingKeys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	// Stop flag parsing at the key so "-1" is read as a value.
	configSetCmd.Flags().SetInterspersed(false)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  User agent: %s\n", settings.API.UserAgent)
	if settings.API.AccessToken != "" {
		cmd.Printf("  Access token: %s\n", maskToken(settings.API.AccessToken))
	} else {
		cmd.Printf("  Access token: (not set)\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	if settings.API.RequestsPerSecond > 0 {
		cmd.Printf("  Requests per second: %g\n", settings.API.RequestsPerSecond)
	} else {
		cmd.Printf("  Requests per second: unlimited\n")
	}
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Max pages: %d\n", settings.Fetch.MaxPages)
	cmd.Printf("  Per page: %d\n", settings.Fetch.PerPage)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	cmd.Printf("  Path: %s\n", settings.Storage.Path)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if key == domain.KeyAPIAccessToken {
		value = maskToken(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}
	cmd.Println(settingsService.ConfigPath())
	return nil
}

// maskToken hides all but the ends of a secret.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
