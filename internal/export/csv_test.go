package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/khrees2412/jobcards/pkg/models"
	"github.com/stretchr/testify/require"
)

var records = []models.JobRecord{
	{Title: "Backend Engineer", Company: "Acme", Location: "San Francisco, CA", DatePosted: "2024-05-01"},
	{Title: "Platform Engineer", Company: "Globex", Location: "Remote"},
}

func TestFileName(t *testing.T) {
	require.Equal(t, "job_details_senior_go_engineer.csv", FileName("senior go engineer"))
	require.Equal(t, "job_details_golang.csv", FileName("golang"))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	want := "Job Title,Company,Location,Date Posted\n" +
		"Backend Engineer,Acme,\"San Francisco, CA\",2024-05-01\n" +
		"Platform Engineer,Globex,Remote,\n"
	require.Equal(t, want, buf.String())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", FileName("go dev"))
	require.NoError(t, Save(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Header, rows[0])
	require.Equal(t, []string{"Platform Engineer", "Globex", "Remote", ""}, rows[2])
}
