// Package pipeline runs one extraction pass over a page and hands the
// result to the CSV exporter and the run history.
package pipeline

import (
	"fmt"
	"time"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/database"
	"github.com/khrees2412/jobcards/internal/dom"
	"github.com/khrees2412/jobcards/internal/export"
	"github.com/khrees2412/jobcards/internal/extract"
	"github.com/khrees2412/jobcards/pkg/models"
)

const (
	SourceLive = "live"
	SourceFile = "file"
)

type Options struct {
	Term       string
	Source     string
	OutputPath string
}

type Outcome struct {
	Run     *models.Run
	Records []models.JobRecord
	Summary models.Summary
}

// Process extracts every record on the page behind q, saves them to
// opts.OutputPath and stores the run when a database is open. A page
// without records is stored too and reported as app.ErrNoRecords.
func Process(q dom.Querier, ex *extract.Extractor, opts Options) (*Outcome, error) {
	run := &models.Run{
		SearchTerm: opts.Term,
		Source:     opts.Source,
		StartedAt:  time.Now().UTC(),
	}
	if run.Source == "" {
		run.Source = SourceLive
	}

	res := ex.Run(q, nil)
	run.CardsFound = res.CardsFound
	run.CardsFailed = res.CardsFailed
	run.RecordsKept = len(res.Records)
	run.PageLength = res.PageLength
	if res.CardsFound > 0 {
		run.CardSelector = res.CardStrategy.String()
	}

	out := &Outcome{Run: run, Records: res.Records, Summary: models.Summarize(res.Records)}

	if len(res.Records) > 0 {
		if err := export.Save(opts.OutputPath, res.Records); err != nil {
			return out, err
		}
		run.OutputPath = opts.OutputPath
	}
	run.FinishedAt = time.Now().UTC()

	if database.DB != nil {
		if err := database.CreateRun(run, res.Records); err != nil {
			return out, fmt.Errorf("failed to record run: %w", err)
		}
	}

	if len(res.Records) == 0 {
		return out, app.ErrNoRecords
	}
	return out, nil
}
