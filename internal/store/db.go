// Package store persists the history of export runs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-mvmapper/internal/model"
)

var db *sql.DB

// InitDB opens the database and creates the schema if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	exportTable := `
	CREATE TABLE IF NOT EXISTS exports (
		id TEXT PRIMARY KEY,
		spec TEXT,
		status TEXT,
		output_path TEXT,
		row_count INTEGER,
		col_count INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS export_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		export_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(exportTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}

	return nil
}

// SaveExport stores a new export run in pending state.
func SaveExport(runID string, spec model.ExportRequest) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO exports (id, spec, status, output_path, row_count, col_count, created_at, updated_at)
		VALUES (?, ?, ?, '', 0, 0, ?, ?)`,
		runID, specJSON, model.StatusPending, now, now)
	return err
}

// UpdateExportStatus updates a run's status.
func UpdateExportStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE exports SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SetExportResult records the outcome of a completed run.
func SetExportResult(runID string, rowCount, colCount int, outputPath string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE exports SET status = ?, output_path = ?, row_count = ?, col_count = ?, updated_at = ? WHERE id = ?`,
		model.StatusCompleted, outputPath, rowCount, colCount, now, runID)
	return err
}

// SaveExportError records an error for a run.
func SaveExportError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO export_errors (export_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// ListExports returns all export runs, newest first.
func ListExports() ([]model.ExportRun, error) {
	rows, err := db.Query(`SELECT id, spec, status, output_path, row_count, col_count, created_at, updated_at
		FROM exports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.ExportRun
	for rows.Next() {
		run, err := scanExport(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetExport fetches one export run by id.
func GetExport(runID string) (model.ExportRun, error) {
	row := db.QueryRow(`SELECT id, spec, status, output_path, row_count, col_count, created_at, updated_at
		FROM exports WHERE id = ?`, runID)
	return scanExport(row.Scan)
}

// GetExportErrors returns the recorded errors of a run.
func GetExportErrors(runID string) ([]string, error) {
	rows, err := db.Query(`SELECT error_message FROM export_errors WHERE export_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

func scanExport(scan func(...interface{}) error) (model.ExportRun, error) {
	var (
		run                  model.ExportRun
		specJSON             string
		createdAt, updatedAt time.Time
	)
	if err := scan(&run.ID, &specJSON, &run.Status, &run.OutputPath, &run.RowCount, &run.ColCount, &createdAt, &updatedAt); err != nil {
		return model.ExportRun{}, err
	}
	if err := json.Unmarshal([]byte(specJSON), &run.Spec); err != nil {
		return model.ExportRun{}, err
	}
	run.CreatedAt = createdAt.Format(time.RFC3339)
	run.UpdatedAt = updatedAt.Format(time.RFC3339)
	return run, nil
}
