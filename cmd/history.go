package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/database"
	"github.com/khrees2412/jobcards/internal/report"
	"github.com/khrees2412/jobcards/pkg/models"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent extraction runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			return fmt.Errorf("%w: --limit must be positive", app.ErrInvalidArgument)
		}

		runs, err := database.GetRecentRuns(limit)
		if err != nil {
			return fmt.Errorf("failed to fetch runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs yet. Extract jobs with 'jobcards scrape' or 'jobcards extract <file>'")
			return nil
		}

		fmt.Println(titleStyle.Render("Recent Runs"))
		report.Runs(os.Stdout, runs)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the records of a stored run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: run id must be a number", app.ErrInvalidArgument)
		}

		run, err := database.GetRun(id)
		if err != nil {
			return fmt.Errorf("failed to fetch run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("%w: run #%d", app.ErrNotFound, id)
		}
		records, err := database.GetRunRecords(id)
		if err != nil {
			return fmt.Errorf("failed to fetch records: %w", err)
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Run #%d: %s", run.ID, run.SearchTerm)))
		fmt.Printf("%s %s\n", labelStyle.Render("Source:"), run.Source)
		fmt.Printf("%s %s\n", labelStyle.Render("Started:"), run.StartedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("%s %s\n", labelStyle.Render("Took:"), run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
		fmt.Printf("%s %d found, %d kept, %d failed\n", labelStyle.Render("Cards:"), run.CardsFound, run.RecordsKept, run.CardsFailed)
		if run.CardSelector != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Selector:"), run.CardSelector)
		}
		if run.OutputPath != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Output:"), run.OutputPath)
		}
		fmt.Println()

		if len(records) == 0 {
			fmt.Println("No records stored for this run.")
			return nil
		}
		report.Records(os.Stdout, records)
		report.Summary(os.Stdout, models.Summarize(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)

	historyCmd.Flags().Int("limit", 10, "Number of runs to list")
}
