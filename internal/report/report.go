// Package report renders extracted records and stored runs as terminal
// tables.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/khrees2412/jobcards/pkg/models"
)

const timeLayout = "2006-01-02 15:04"

// NewTable returns a rounded table writer mirrored to w.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Records writes one row per record, numbered from 1.
func Records(w io.Writer, records []models.JobRecord) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"#", "Job Title", "Company", "Location", "Date Posted"})
	for i, r := range records {
		t.AppendRow(table.Row{i + 1, r.Title, r.Company, r.Location, r.DatePosted})
	}
	t.Render()
}

// Runs writes the run history, newest first as given.
func Runs(w io.Writer, runs []*models.Run) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"ID", "Started", "Term", "Source", "Cards", "Kept", "Failed", "Selector"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			r.StartedAt.Local().Format(timeLayout),
			r.SearchTerm,
			r.Source,
			r.CardsFound,
			r.RecordsKept,
			r.CardsFailed,
			r.CardSelector,
		})
	}
	t.Render()
}

// Summary writes field coverage as "n/total (pct%)" lines.
func Summary(w io.Writer, s models.Summary) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"Field", "Filled"})
	t.AppendRow(table.Row{"Job Title", coverage(s.WithTitle, s.Total)})
	t.AppendRow(table.Row{"Company", coverage(s.WithCompany, s.Total)})
	t.AppendRow(table.Row{"Location", coverage(s.WithLocation, s.Total)})
	t.AppendRow(table.Row{"Date Posted", coverage(s.WithDate, s.Total)})
	t.Render()
}

func coverage(n, total int) string {
	if total == 0 {
		return "0/0"
	}
	pct := float64(n) / float64(total) * 100
	return fmt.Sprintf("%d/%d (%.0f%%)", n, total, pct)
}
