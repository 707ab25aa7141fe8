package database

import (
	"database/sql"
	"fmt"

	"github.com/khrees2412/jobcards/pkg/models"
)

// Run operations

// CreateRun stores a run and its records in one transaction. Record order
// is kept in the position column.
func CreateRun(run *models.Run, records []models.JobRecord) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO runs (search_term, source, card_selector, cards_found, cards_failed,
			  records_kept, page_length, output_path, started_at, finished_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.Exec(query, run.SearchTerm, run.Source, run.CardSelector, run.CardsFound,
		run.CardsFailed, run.RecordsKept, run.PageLength, run.OutputPath, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	id, _ := result.LastInsertId()

	stmt, err := tx.Prepare(`INSERT INTO job_records (run_id, position, title, company, location, date_posted)
			  VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(id, i, r.Title, r.Company, r.Location, r.DatePosted); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	run.ID = int(id)
	return nil
}

func GetRun(id int) (*models.Run, error) {
	query := `SELECT id, search_term, source, card_selector, cards_found, cards_failed,
			  records_kept, page_length, output_path, started_at, finished_at FROM runs WHERE id=?`
	run, err := scanRun(DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// GetRecentRuns returns up to limit runs, newest first
func GetRecentRuns(limit int) ([]*models.Run, error) {
	query := `SELECT id, search_term, source, card_selector, cards_found, cards_failed,
			  records_kept, page_length, output_path, started_at, finished_at
			  FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`
	rows, err := DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*models.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunRecords returns the records of a run in extraction order
func GetRunRecords(runID int) ([]models.JobRecord, error) {
	query := `SELECT title, company, location, date_posted FROM job_records
			  WHERE run_id=? ORDER BY position`
	rows, err := DB.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.JobRecord{}
	for rows.Next() {
		var r models.JobRecord
		if err := rows.Scan(&r.Title, &r.Company, &r.Location, &r.DatePosted); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func DeleteRun(id int) error {
	_, err := DB.Exec(`DELETE FROM runs WHERE id=?`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*models.Run, error) {
	run := &models.Run{}
	err := row.Scan(&run.ID, &run.SearchTerm, &run.Source, &run.CardSelector, &run.CardsFound,
		&run.CardsFailed, &run.RecordsKept, &run.PageLength, &run.OutputPath,
		&run.StartedAt, &run.FinishedAt)
	if err != nil {
		return nil, err
	}
	return run, nil
}
