// Package export writes extracted job records as a four-column CSV table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khrees2412/jobcards/pkg/models"
)

// Header is the fixed column layout of every export.
var Header = []string{"Job Title", "Company", "Location", "Date Posted"}

// FileName returns the default export name for a search term.
func FileName(term string) string {
	return fmt.Sprintf("job_details_%s.csv", strings.ReplaceAll(term, " ", "_"))
}

// Write emits the header and one row per record, in order.
func Write(w io.Writer, records []models.JobRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Title, r.Company, r.Location, r.DatePosted}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes records to path, creating parent directories.
func Save(path string, records []models.JobRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
