package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/dom"
	"github.com/khrees2412/jobcards/internal/export"
	"github.com/khrees2412/jobcards/internal/extract"
	"github.com/khrees2412/jobcards/internal/pipeline"
	"github.com/khrees2412/jobcards/internal/report"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.html>",
	Short: "Extract job cards from a saved results page",
	Example: `  jobcards extract page.html
  jobcards extract page.html --term "golang developer" --out jobs.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.FromContext(cmd.Context())

		term, _ := cmd.Flags().GetString("term")
		out, _ := cmd.Flags().GetString("out")
		if term == "" {
			term = termFromFile(args[0])
		}
		out = outputPath(out, a.Config.OutputDir, term)

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", app.ErrInvalidArgument, err)
		}
		defer f.Close()

		doc, err := dom.Parse(f)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		outcome, err := pipeline.Process(doc, extract.New(extract.DefaultChains(), a.Logger), pipeline.Options{
			Term:       term,
			Source:     pipeline.SourceFile,
			OutputPath: out,
		})
		return printOutcome(outcome, err)
	},
}

// printOutcome reports a pipeline result. A page without records is not a
// command failure.
func printOutcome(outcome *pipeline.Outcome, err error) error {
	if errors.Is(err, app.ErrNoRecords) {
		fmt.Println("No job details found. The page may not have loaded or its markup changed.")
		fmt.Printf("Run #%d recorded with %d cards found.\n", outcome.Run.ID, outcome.Run.CardsFound)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Extracted %d job listings", len(outcome.Records))))
	report.Records(os.Stdout, outcome.Records)
	report.Summary(os.Stdout, outcome.Summary)
	fmt.Printf("%s %s\n", labelStyle.Render("Cards:"), outcomeCounts(outcome))
	fmt.Printf("%s %s\n", labelStyle.Render("Saved:"), outcome.Run.OutputPath)
	fmt.Printf("%s #%d\n", labelStyle.Render("Run:"), outcome.Run.ID)
	return nil
}

func outcomeCounts(o *pipeline.Outcome) string {
	return fmt.Sprintf("%d found, %d kept, %d failed (selector %s)",
		o.Run.CardsFound, o.Run.RecordsKept, o.Run.CardsFailed, o.Run.CardSelector)
}

// outputPath returns out, or the default export name for term in dir.
func outputPath(out, dir, term string) string {
	if out != "" {
		return out
	}
	return filepath.Join(dir, export.FileName(term))
}

// termFromFile derives a search term from a saved page's file name.
func termFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("term", "", "Search term recorded with the run (default the file name)")
	extractCmd.Flags().String("out", "", "CSV output path (default job_details_<term>.csv in output_dir)")
}
