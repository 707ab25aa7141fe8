package database

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/khrees2412/jobcards/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// createTestDB creates a temporary test database
func createTestDB(t testing.TB) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Open with pragmas
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// setupTest swaps in a test database and returns a cleanup function
func setupTest(t testing.TB) func() {
	db := createTestDB(t)
	oldDB := DB
	DB = db

	return func() {
		DB = oldDB
		db.Close()
	}
}

func newRun(term string, started time.Time) *models.Run {
	return &models.Run{
		SearchTerm:   term,
		Source:       "file",
		CardSelector: "css:.job-card-container",
		CardsFound:   3,
		RecordsKept:  2,
		PageLength:   1024,
		OutputPath:   "job_details_" + term + ".csv",
		StartedAt:    started,
		FinishedAt:   started.Add(time.Second),
	}
}

func TestCreateRunKeepsRecordOrder(t *testing.T) {
	cleanup := setupTest(t)
	defer cleanup()

	records := []models.JobRecord{
		{Title: "Backend Engineer", Company: "Acme", Location: "Remote", DatePosted: "2024-05-01"},
		{Title: "Backend Engineer", Company: "Acme", Location: "Remote", DatePosted: "2024-05-01"},
		{Title: "Platform Engineer"},
	}
	run := newRun("golang", time.Now().UTC())

	require.NoError(t, CreateRun(run, records))
	require.NotZero(t, run.ID)

	got, err := GetRunRecords(run.ID)
	require.NoError(t, err)
	require.Equal(t, records, got)

	stored, err := GetRun(run.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "golang", stored.SearchTerm)
	require.Equal(t, "css:.job-card-container", stored.CardSelector)
	require.Equal(t, 1024, stored.PageLength)
}

func TestGetRunMissing(t *testing.T) {
	cleanup := setupTest(t)
	defer cleanup()

	run, err := GetRun(42)
	require.NoError(t, err)
	require.Nil(t, run)
}

func TestGetRecentRuns(t *testing.T) {
	cleanup := setupTest(t)
	defer cleanup()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		run := newRun(fmt.Sprintf("term%d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, CreateRun(run, nil))
	}

	runs, err := GetRecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "term3", runs[0].SearchTerm)
	require.Equal(t, "term2", runs[1].SearchTerm)
}

func TestDeleteRunCascade(t *testing.T) {
	cleanup := setupTest(t)
	defer cleanup()

	run := newRun("golang", time.Now().UTC())
	require.NoError(t, CreateRun(run, []models.JobRecord{{Title: "Engineer"}}))

	require.NoError(t, DeleteRun(run.ID))

	records, err := GetRunRecords(run.ID)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSourceConstraint(t *testing.T) {
	cleanup := setupTest(t)
	defer cleanup()

	run := newRun("golang", time.Now().UTC())
	run.Source = "carrier-pigeon"
	require.Error(t, CreateRun(run, nil))
}

// TestForeignKeyConstraint verifies foreign keys are enabled
func TestForeignKeyConstraint(t *testing.T) {
	cleanup := setupTest(t)
	defer cleanup()

	_, err := DB.Exec(`INSERT INTO job_records (run_id, position, title) VALUES (99999, 0, 'x')`)
	require.Error(t, err, "should have failed due to foreign key constraint")
}

func TestInitialize(t *testing.T) {
	oldDB := DB
	defer func() { DB = oldDB }()

	path := filepath.Join(t.TempDir(), "data", "jobcards.db")
	require.NoError(t, Initialize(path))
	defer Close()

	require.FileExists(t, path)
	runs, err := GetRecentRuns(10)
	require.NoError(t, err)
	require.Empty(t, runs)
}

// BenchmarkCreateRun benchmarks storing a run with a page of records
func BenchmarkCreateRun(b *testing.B) {
	cleanup := setupTest(b)
	defer cleanup()

	records := make([]models.JobRecord, 25)
	for i := range records {
		records[i] = models.JobRecord{Title: fmt.Sprintf("Job %d", i), Company: "Acme"}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CreateRun(newRun("bench", time.Now()), records)
	}
}
