package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, InitializeFrom(path))
	require.FileExists(t, path)

	require.True(t, AppConfig.Headless)
	require.Equal(t, 3, AppConfig.ScrollPasses)
	require.Equal(t, "info", AppConfig.LogLevel)
	require.Equal(t, ".", AppConfig.OutputDir)
	require.Equal(t, filepath.Join(filepath.Dir(path), "jobcards.db"), AppConfig.DBPath)
	require.Empty(t, AppConfig.LinkedInEmail)
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, InitializeFrom(path))

	require.NoError(t, Set("job_title", "golang developer"))
	require.NoError(t, InitializeFrom(path))
	require.Equal(t, "golang developer", AppConfig.JobTitle)
	require.Equal(t, "golang developer", Get("job_title"))
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("JOBCARDS_SCROLL_PASSES", "7")
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, InitializeFrom(path))
	require.Equal(t, 7, AppConfig.ScrollPasses)
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeFrom(filepath.Join(dir, "config.yaml")))

	inputs := filepath.Join(dir, "inputs.json")
	body := `{"email": "me@example.com", "password": "hunter2", "jobTitle": "site reliability"}`
	require.NoError(t, os.WriteFile(inputs, []byte(body), 0600))

	require.NoError(t, LoadInputs(inputs))
	require.Equal(t, "me@example.com", AppConfig.LinkedInEmail)
	require.Equal(t, "hunter2", AppConfig.LinkedInPassword)
	require.Equal(t, "site reliability", AppConfig.JobTitle)
	require.Equal(t, 3, AppConfig.ScrollPasses)
}

func TestLoadInputsMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeFrom(filepath.Join(dir, "config.yaml")))

	require.Error(t, LoadInputs(filepath.Join(dir, "missing.json")))
}
