package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded generate invocation.
type Run struct {
	RunID        int64
	ExternalID   string
	CreatedAt    time.Time
	ModelName    string
	Provider     string
	Mode         string
	TopicCount   int
	FieldsOK     int
	FieldsFailed int
	RunDir       string
}

// FieldRecord is one (topic, field) call outcome.
type FieldRecord struct {
	RunID           int64
	TopicIndex      int
	TopicInput      string
	Field           string
	Status          string
	ErrorMessage    sql.NullString
	Chars           int
	MatchedInternal sql.NullString
	MatchedExternal sql.NullString
	Language        sql.NullString
}

// Field call statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// InsertRun records a run's header row and returns its DB ID.
func (db *DB) InsertRun(r Run) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO runs (external_id, model_name, provider, mode, topic_count, fields_ok, fields_failed, run_dir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ExternalID, r.ModelName, r.Provider, r.Mode, r.TopicCount, r.FieldsOK, r.FieldsFailed, r.RunDir,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return id, nil
}

// InsertFieldRecord records one field call under a run.
func (db *DB) InsertFieldRecord(fr FieldRecord) error {
	_, err := db.Exec(`
		INSERT INTO run_fields (run_id, topic_index, topic_input, field, status, error_message, chars, matched_internal, matched_external, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fr.RunID, fr.TopicIndex, fr.TopicInput, fr.Field, fr.Status,
		fr.ErrorMessage, fr.Chars, fr.MatchedInternal, fr.MatchedExternal, fr.Language,
	)
	if err != nil {
		return fmt.Errorf("failed to insert field record: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, external_id, created_at, model_name, provider, mode, topic_count, fields_ok, fields_failed, COALESCE(run_dir, '')
		FROM runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.ExternalID, &r.CreatedAt, &r.ModelName, &r.Provider,
			&r.Mode, &r.TopicCount, &r.FieldsOK, &r.FieldsFailed, &r.RunDir); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunByID fetches one run's header row.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, external_id, created_at, model_name, provider, mode, topic_count, fields_ok, fields_failed, COALESCE(run_dir, '')
		FROM runs WHERE run_id = ?`, runID).
		Scan(&r.RunID, &r.ExternalID, &r.CreatedAt, &r.ModelName, &r.Provider,
			&r.Mode, &r.TopicCount, &r.FieldsOK, &r.FieldsFailed, &r.RunDir)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// LatestRunID returns the most recent run's DB ID.
func (db *DB) LatestRunID() (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY created_at DESC, run_id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return id, nil
}

// GetRunFields returns a run's field records in call order.
func (db *DB) GetRunFields(runID int64) ([]FieldRecord, error) {
	rows, err := db.Query(`
		SELECT run_id, topic_index, topic_input, field, status, error_message, chars, matched_internal, matched_external, language
		FROM run_fields WHERE run_id = ? ORDER BY field_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run fields: %w", err)
	}
	defer rows.Close()

	var records []FieldRecord
	for rows.Next() {
		var fr FieldRecord
		if err := rows.Scan(&fr.RunID, &fr.TopicIndex, &fr.TopicInput, &fr.Field, &fr.Status,
			&fr.ErrorMessage, &fr.Chars, &fr.MatchedInternal, &fr.MatchedExternal, &fr.Language); err != nil {
			return nil, fmt.Errorf("failed to scan field record: %w", err)
		}
		records = append(records, fr)
	}
	return records, rows.Err()
}
