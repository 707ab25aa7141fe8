package models

import "time"

// JobRecord is one job posting extracted from a results page. Any field may
// be empty except Title on records that leave the extractor.
type JobRecord struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	DatePosted string `json:"date_posted"`
}

// Run is one persisted extraction pass over a page
type Run struct {
	ID           int       `json:"id"`
	SearchTerm   string    `json:"search_term"`
	Source       string    `json:"source"` // live, file
	CardSelector string    `json:"card_selector"`
	CardsFound   int       `json:"cards_found"`
	CardsFailed  int       `json:"cards_failed"`
	RecordsKept  int       `json:"records_kept"`
	PageLength   int       `json:"page_length"`
	OutputPath   string    `json:"output_path"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// Summary counts how many records populated each field
type Summary struct {
	Total        int `json:"total"`
	WithTitle    int `json:"with_title"`
	WithCompany  int `json:"with_company"`
	WithLocation int `json:"with_location"`
	WithDate     int `json:"with_date"`
}

// Summarize builds a Summary over records
func Summarize(records []JobRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Title != "" {
			s.WithTitle++
		}
		if r.Company != "" {
			s.WithCompany++
		}
		if r.Location != "" {
			s.WithLocation++
		}
		if r.DatePosted != "" {
			s.WithDate++
		}
	}
	return s
}
