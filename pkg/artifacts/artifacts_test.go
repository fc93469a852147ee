package artifacts

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestNewRunIDFormat(t *testing.T) {
	id := NewRunID("gpt-4.1", []string{"topic a", "topic b"})
	// YYYY-MM-DDTHH-MM-{12 hex chars}
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-[0-9a-f]{12}$`)
	if !pattern.MatchString(id) {
		t.Errorf("NewRunID() = %q, want timestamp-hash format", id)
	}
}

func TestNewRunIDStableForSameInputs(t *testing.T) {
	a := NewRunID("gpt-4.1", []string{"x"})
	b := NewRunID("gpt-4.1", []string{"x"})
	if a != b {
		t.Errorf("same-minute IDs differ: %q vs %q", a, b)
	}
	c := NewRunID("gpt-4.1", []string{"y"})
	if a == c {
		t.Error("different topic sets produced the same run ID")
	}
}

func TestEnsureRunDirAndSummary(t *testing.T) {
	base := t.TempDir()
	s := RunSummary{
		RunID:      "2026-01-02T03-04-abcdefabcdef",
		Created:    time.Now(),
		ModelName:  "gpt-4.1",
		Provider:   "openai",
		Mode:       "all",
		TopicCount: 2,
		FieldsOK:   12,
		ResultsCSV: "results.csv",
	}

	dir, err := EnsureRunDir(base, s.RunID)
	if err != nil {
		t.Fatalf("EnsureRunDir() error = %v", err)
	}
	if dir != filepath.Join(base, "runs", s.RunID) {
		t.Errorf("run dir = %q", dir)
	}

	if err := WriteSummary(base, s); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "summary.yaml")); err != nil {
		t.Errorf("summary.yaml missing: %v", err)
	}
}

func TestUpdateAndReadIndex(t *testing.T) {
	base := t.TempDir()

	first := RunSummary{RunID: "run-1", ModelName: "gpt-4.1", TopicCount: 1}
	second := RunSummary{RunID: "run-2", ModelName: "gpt-4.1", TopicCount: 3}

	if err := UpdateIndex(base, first); err != nil {
		t.Fatalf("UpdateIndex() error = %v", err)
	}
	if err := UpdateIndex(base, second); err != nil {
		t.Fatalf("UpdateIndex() error = %v", err)
	}

	runs, err := ReadIndex(base)
	if err != nil {
		t.Fatalf("ReadIndex() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	// Newest first.
	if runs[0].RunID != "run-2" || runs[1].RunID != "run-1" {
		t.Errorf("index order = [%s %s], want [run-2 run-1]", runs[0].RunID, runs[1].RunID)
	}

	// Re-recording a run replaces its entry instead of duplicating it.
	first.TopicCount = 9
	if err := UpdateIndex(base, first); err != nil {
		t.Fatalf("UpdateIndex() error = %v", err)
	}
	runs, err = ReadIndex(base)
	if err != nil {
		t.Fatalf("ReadIndex() error = %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("len(runs) = %d after re-record, want 2", len(runs))
	}
	if runs[0].RunID != "run-1" || runs[0].TopicCount != 9 {
		t.Errorf("re-recorded run not first/updated: %+v", runs[0])
	}
}

func TestReadIndexMissingFile(t *testing.T) {
	runs, err := ReadIndex(t.TempDir())
	if err != nil {
		t.Fatalf("ReadIndex() error = %v", err)
	}
	if runs != nil {
		t.Errorf("runs = %v, want nil", runs)
	}
}
