// Package artifacts lays out per-run output directories and maintains the
// run index.
package artifacts

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseDir holds run artifacts and the history DB.
	DefaultBaseDir = "sce-results"
	runsDir        = "runs"
	summaryFile    = "summary.yaml"
	indexFile      = "index.yaml"

	// ResultsCSV is the exported table inside a run directory.
	ResultsCSV = "results.csv"
)

// RunSummary is the per-run summary.yaml document and one entry of the
// base index.yaml.
type RunSummary struct {
	RunID         string    `yaml:"run_id"`
	Created       time.Time `yaml:"created"`
	ModelName     string    `yaml:"model_name"`
	Provider      string    `yaml:"provider"`
	Mode          string    `yaml:"mode"`
	TopicCount    int       `yaml:"topic_count"`
	FieldsOK      int       `yaml:"fields_ok"`
	FieldsFailed  int       `yaml:"fields_failed"`
	BodyLanguage  string    `yaml:"body_language,omitempty"`
	ResultsCSV    string    `yaml:"results_csv"`
	TopicsPreview []string  `yaml:"topics_preview,omitempty"` // first 3 topics
}

type runIndex struct {
	Runs []RunSummary `yaml:"runs"`
}

// NewRunID creates a timestamp-first run ID: YYYY-MM-DDTHH-MM-{hash12}.
// The hash covers model name plus the topic inputs, so re-running the same
// setup in the same minute collides deliberately.
func NewRunID(modelName string, topicInputs []string) string {
	h := sha256.New()
	h.Write([]byte(modelName))
	h.Write([]byte{'\n'})
	for _, topic := range topicInputs {
		h.Write([]byte(topic))
		h.Write([]byte{'\n'})
	}
	shortHash := hex.EncodeToString(h.Sum(nil)[:6])
	return fmt.Sprintf("%s-%s", time.Now().Format("2006-01-02T15-04"), shortHash)
}

// RunDir returns the directory for one run's artifacts.
func RunDir(baseDir, runID string) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, runsDir, runID)
}

// EnsureRunDir creates the run directory structure.
func EnsureRunDir(baseDir, runID string) (string, error) {
	dir := RunDir(baseDir, runID)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}
	return dir, nil
}

// WriteSummary writes summary.yaml inside the run directory.
func WriteSummary(baseDir string, s RunSummary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}
	path := filepath.Join(RunDir(baseDir, s.RunID), summaryFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	return nil
}

// IndexPath returns the path of the base-level run index.
func IndexPath(baseDir string) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, indexFile)
}

// UpdateIndex appends or replaces a run entry in index.yaml, newest first.
func UpdateIndex(baseDir string, s RunSummary) error {
	path := IndexPath(baseDir)

	var idx runIndex
	if data, err := os.ReadFile(path); err == nil {
		// A corrupt index is rebuilt rather than failing the run.
		_ = yaml.Unmarshal(data, &idx)
	}

	kept := idx.Runs[:0]
	for _, r := range idx.Runs {
		if r.RunID != s.RunID {
			kept = append(kept, r)
		}
	}
	idx.Runs = append([]RunSummary{s}, kept...)

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to marshal run index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run index: %w", err)
	}
	return nil
}

// ReadIndex loads the run index; a missing file yields an empty list.
func ReadIndex(baseDir string) ([]RunSummary, error) {
	data, err := os.ReadFile(IndexPath(baseDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read run index: %w", err)
	}
	var idx runIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse run index: %w", err)
	}
	return idx.Runs, nil
}
