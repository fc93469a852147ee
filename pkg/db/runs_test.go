package db

import (
	"database/sql"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return db
}

func TestInsertAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.InsertRun(Run{
		ExternalID:   "2026-01-02T03-04-abcdefabcdef",
		ModelName:    "gpt-4.1",
		Provider:     "openai",
		Mode:         "all",
		TopicCount:   2,
		FieldsOK:     11,
		FieldsFailed: 1,
		RunDir:       "sce-results/runs/2026-01-02T03-04-abcdefabcdef",
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if id == 0 {
		t.Fatal("InsertRun() returned 0 ID")
	}

	run, err := db.GetRunByID(id)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.ModelName != "gpt-4.1" {
		t.Errorf("ModelName = %q, want gpt-4.1", run.ModelName)
	}
	if run.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", run.Provider)
	}
	if run.TopicCount != 2 || run.FieldsOK != 11 || run.FieldsFailed != 1 {
		t.Errorf("counts = (%d, %d, %d), want (2, 11, 1)",
			run.TopicCount, run.FieldsOK, run.FieldsFailed)
	}
}

func TestGetRunByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(42); err == nil {
		t.Error("GetRunByID(42) error = nil, want not-found error")
	}
}

func TestInsertAndGetRunFields(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(Run{ExternalID: "r1", ModelName: "gemini-2.5-pro", Provider: "gemini", Mode: "all", TopicCount: 1})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	records := []FieldRecord{
		{RunID: runID, TopicIndex: 0, TopicInput: "t", Field: "page_title", Status: StatusSuccess, Chars: 42},
		{RunID: runID, TopicIndex: 0, TopicInput: "t", Field: "main_text_html", Status: StatusFailed,
			ErrorMessage: sql.NullString{String: "ERROR: Max retries.", Valid: true}},
	}
	for _, fr := range records {
		if err := db.InsertFieldRecord(fr); err != nil {
			t.Fatalf("InsertFieldRecord() error = %v", err)
		}
	}

	got, err := db.GetRunFields(runID)
	if err != nil {
		t.Fatalf("GetRunFields() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Field != "page_title" || got[0].Status != StatusSuccess {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].Status != StatusFailed || !got[1].ErrorMessage.Valid {
		t.Errorf("record 1 = %+v, want failed with error message", got[1])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, ext := range []string{"r1", "r2", "r3"} {
		if _, err := db.InsertRun(Run{ExternalID: ext, ModelName: "m", Provider: "mock", Mode: "all", TopicCount: 1}); err != nil {
			t.Fatalf("InsertRun(%s) error = %v", ext, err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len = %d, want 2 (limit)", len(runs))
	}
	if runs[0].ExternalID != "r3" {
		t.Errorf("first run = %q, want r3", runs[0].ExternalID)
	}
}

func TestLatestRunID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestRunID(); err == nil {
		t.Error("LatestRunID() on empty DB error = nil, want error")
	}

	want, err := db.InsertRun(Run{ExternalID: "only", ModelName: "m", Provider: "mock", Mode: "all", TopicCount: 1})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	got, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("LatestRunID() error = %v", err)
	}
	if got != want {
		t.Errorf("LatestRunID() = %d, want %d", got, want)
	}
}

func TestCascadeDeleteRunFields(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(Run{ExternalID: "r", ModelName: "m", Provider: "mock", Mode: "all", TopicCount: 1})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if err := db.InsertFieldRecord(FieldRecord{RunID: runID, Field: "page_title", Status: StatusSuccess}); err != nil {
		t.Fatalf("InsertFieldRecord() error = %v", err)
	}

	if _, err := db.Exec("DELETE FROM runs WHERE run_id = ?", runID); err != nil {
		t.Fatalf("delete run: %v", err)
	}
	fields, err := db.GetRunFields(runID)
	if err != nil {
		t.Fatalf("GetRunFields() error = %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("fields survived cascade delete: %+v", fields)
	}
}
