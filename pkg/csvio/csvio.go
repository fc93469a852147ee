// Package csvio imports topic tables and exports generation results as CSV.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/bastianw/seo-content-engine/models"
)

// Topic table column names.
const (
	colTopicInput        = "topic_input"
	colPrimaryKeyword    = "primary_keyword"
	colSecondaryKeywords = "secondary_keywords"
)

// ReadTopics parses a topic CSV. Columns are matched by header name;
// missing columns are created empty and extra columns are ignored. An
// input with only a header row yields an empty table, not an error.
func ReadTopics(r io.Reader) ([]models.TopicRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var topics []models.TopicRow
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		topics = append(topics, models.TopicRow{
			TopicInput:        cell(row, colTopicInput),
			PrimaryKeyword:    cell(row, colPrimaryKeyword),
			SecondaryKeywords: cell(row, colSecondaryKeywords),
		})
	}
	return topics, nil
}

// ReadTopicsFile reads a topic CSV from disk.
func ReadTopicsFile(path string) ([]models.TopicRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open topics CSV: %w", err)
	}
	defer f.Close()
	return ReadTopics(f)
}

// WriteResults exports output records with the fixed column order.
func WriteResults(w io.Writer, records []models.OutputRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.OutputColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range records {
		if err := cw.Write(records[i].Row()); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResultsFile exports output records to a file on disk.
func WriteResultsFile(path string, records []models.OutputRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results CSV: %w", err)
	}
	defer f.Close()
	return WriteResults(f, records)
}
