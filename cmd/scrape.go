package cmd

import (
	"fmt"
	"os"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/browser"
	"github.com/khrees2412/jobcards/internal/extract"
	"github.com/khrees2412/jobcards/internal/pipeline"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Sign in, search and extract job cards from the live site",
	Example: `  jobcards scrape --term "golang developer"
  jobcards scrape --inputs inputs.json --out jobs.csv
  jobcards scrape --term sre --snapshot page.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.FromContext(cmd.Context())
		cfg := a.Config

		term, _ := cmd.Flags().GetString("term")
		out, _ := cmd.Flags().GetString("out")
		snapshot, _ := cmd.Flags().GetString("snapshot")
		if term == "" {
			term = cfg.JobTitle
		}
		if term == "" {
			return fmt.Errorf("%w: no search term, use --term or set job_title", app.ErrInvalidArgument)
		}
		out = outputPath(out, cfg.OutputDir, term)

		ctx, cancel := browser.NewContext(cmd.Context(), cfg.Headless, a.Logger)
		defer cancel()
		session := browser.NewSession(ctx, browser.DefaultWaits, a.Logger)
		p := newProgress(os.Stdout)

		p.Stage("Signing in")
		if err := session.Login(cfg.LinkedInEmail, cfg.LinkedInPassword); err != nil {
			p.Fail(err)
			return err
		}
		p.Done("signed in")

		p.Stage("Searching for " + term)
		if err := session.Search(term, cfg.ScrollPasses); err != nil {
			p.Fail(err)
			return err
		}
		p.Done("results loaded")

		if snapshot != "" {
			html, err := session.Page().Snapshot()
			if err != nil {
				return fmt.Errorf("failed to capture page: %w", err)
			}
			if err := os.WriteFile(snapshot, []byte(html), 0644); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			fmt.Printf("✓ Saved page snapshot to %s\n", snapshot)
		}

		outcome, err := pipeline.Process(session.Page(), extract.New(extract.DefaultChains(), a.Logger), pipeline.Options{
			Term:       term,
			Source:     pipeline.SourceLive,
			OutputPath: out,
		})
		return printOutcome(outcome, err)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().String("term", "", "Job title to search for (default job_title from config)")
	scrapeCmd.Flags().String("out", "", "CSV output path (default job_details_<term>.csv in output_dir)")
	scrapeCmd.Flags().String("snapshot", "", "Also save the results page HTML to this path")
}
