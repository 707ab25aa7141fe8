package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/spf13/cobra"
)

var (
	configPath string
	inputsPath string
)

var rootCmd = &cobra.Command{
	Use:   "jobcards",
	Short: "Extract job listings from LinkedIn search results",
	Long: `jobcards signs in to LinkedIn, searches for a job title and extracts every
job card on the results page into a CSV file. Saved pages can be extracted
offline, and every run is kept in a local history.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context(), app.Options{
			ConfigPath: configPath,
			InputsPath: inputsPath,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.WithApp(cmd.Context(), application))
		current = application
		return nil
	},
}

// current is the App built for the running command, closed by execute
var current *app.App

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		cancel()
		os.Exit(1)
	}
}

// execute runs the command tree and closes the App whether or not the
// command failed. cobra skips post-run hooks after a RunE error.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if current != nil {
		if cerr := current.Close(); err == nil {
			err = cerr
		}
		current = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.jobcards/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&inputsPath, "inputs", "", "inputs.json with email, password and jobTitle")
}
