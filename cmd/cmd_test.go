package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/database"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	require.Equal(t, "jobs.csv", outputPath("jobs.csv", "out", "golang"))
	require.Equal(t, filepath.Join("out", "job_details_golang_developer.csv"), outputPath("", "out", "golang developer"))
}

func TestTermFromFile(t *testing.T) {
	require.Equal(t, "results", termFromFile(filepath.Join("saved", "results.html")))
	require.Equal(t, "page", termFromFile("page"))
}

func TestConfigured(t *testing.T) {
	require.Equal(t, "✓ Configured", configured("me@example.com"))
	require.Equal(t, "✗ Not configured", configured(""))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf)

	p.Stage("Signing in")
	p.Done("signed in")
	p.Stage("Searching")
	p.Fail(errors.New("timeout"))

	out := buf.String()
	require.Contains(t, out, "✓ Signing in: signed in\n")
	require.Contains(t, out, "✗ Searching: timeout\n")
}

func TestExecuteClosesAppOnError(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"show", "not-a-number", "--config", filepath.Join(dir, "config.yaml")})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath = ""
		database.DB = nil
	})

	err := execute(context.Background())
	require.True(t, errors.Is(err, app.ErrInvalidArgument))
	require.Nil(t, current)

	require.NotNil(t, database.DB)
	require.Error(t, database.DB.Ping(), "database should be closed after a failed command")
}
