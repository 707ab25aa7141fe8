package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/khrees2412/jobcards/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	var buf bytes.Buffer
	Records(&buf, []models.JobRecord{
		{Title: "Go Engineer", Company: "Acme", Location: "Remote", DatePosted: "2024-05-01"},
		{Title: "SRE"},
	})

	out := buf.String()
	require.Contains(t, out, "JOB TITLE")
	require.Contains(t, out, "Go Engineer")
	require.Contains(t, out, "Acme")
	require.Contains(t, out, "SRE")
}

func TestRuns(t *testing.T) {
	var buf bytes.Buffer
	Runs(&buf, []*models.Run{{
		ID:           7,
		SearchTerm:   "golang",
		Source:       "file",
		CardSelector: "css:.job-card-container",
		CardsFound:   4,
		RecordsKept:  3,
		StartedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}})

	out := buf.String()
	require.Contains(t, out, "golang")
	require.Contains(t, out, "css:.job-card-container")
}

func TestCoverage(t *testing.T) {
	require.Equal(t, "0/0", coverage(0, 0))
	require.Equal(t, "1/2 (50%)", coverage(1, 2))
	require.Equal(t, "3/3 (100%)", coverage(3, 3))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, models.Summary{Total: 4, WithTitle: 4, WithCompany: 2})
	require.Contains(t, buf.String(), "2/4 (50%)")
	require.Contains(t, buf.String(), "0/4 (0%)")
}
