package cmd

import (
	"fmt"
	"slices"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.AppConfig
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}

		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), path)

		// Show if credentials are configured (but don't show them)
		fmt.Printf("%s %s\n", labelStyle.Render("LinkedIn Email:"), configured(cfg.LinkedInEmail))
		fmt.Printf("%s %s\n", labelStyle.Render("LinkedIn Password:"), configured(cfg.LinkedInPassword))

		fmt.Printf("%s %s\n", labelStyle.Render("Job Title:"), cfg.JobTitle)
		fmt.Printf("%s %s\n", labelStyle.Render("Output Dir:"), cfg.OutputDir)
		fmt.Printf("%s %s\n", labelStyle.Render("Database:"), cfg.DBPath)
		fmt.Printf("%s %t\n", labelStyle.Render("Headless:"), cfg.Headless)
		fmt.Printf("%s %d\n", labelStyle.Render("Scroll Passes:"), cfg.ScrollPasses)
		fmt.Printf("%s %s\n", labelStyle.Render("Log Level:"), cfg.LogLevel)
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  jobcards config set --key linkedin_email --value your-email@example.com
  jobcards config set --key linkedin_password --value your-password
  jobcards config set --key job_title --value "golang developer"
  jobcards config set --key headless --value false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("%w: both --key and --value are required", app.ErrInvalidArgument)
		}
		if !slices.Contains(config.Keys, key) {
			return fmt.Errorf("%w: key must be one of %v", app.ErrInvalidArgument, config.Keys)
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		fmt.Printf("✓ Configuration updated: %s\n", key)
		return nil
	},
}

func configured(v string) string {
	if v != "" {
		return "✓ Configured"
	}
	return "✗ Not configured"
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	// Flags for set command
	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
