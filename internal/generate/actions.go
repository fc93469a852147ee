// Package generate implements the `sce generate` command: the batch
// pipeline from configuration to exported CSV, run summary and history.
package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bastianw/seo-content-engine/models"
	"github.com/bastianw/seo-content-engine/pkg/artifacts"
	"github.com/bastianw/seo-content-engine/pkg/batch"
	"github.com/bastianw/seo-content-engine/pkg/csvio"
	dbpkg "github.com/bastianw/seo-content-engine/pkg/db"
	"github.com/bastianw/seo-content-engine/pkg/langcheck"
	"github.com/bastianw/seo-content-engine/pkg/llm"
)

// Flags wires the generate command's flag set.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "sce-config.json", Usage: "path to the configuration JSON"},
		&cli.StringFlag{Name: "topics", Usage: "topic CSV overriding the config's topic table for this run"},
		&cli.BoolFlag{Name: "first-only", Usage: "process only the first topic (prompt iteration mode)"},
		&cli.StringFlag{Name: "out", Value: artifacts.DefaultBaseDir, Usage: "artifacts base directory"},
		&cli.BoolFlag{Name: "mock", Usage: "use the in-process mock backend instead of a vendor API"},
		&cli.BoolFlag{Name: "no-history", Usage: "skip recording the run in the history database"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
	}
}

// Action runs one batch generation.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	if topicsPath := c.String("topics"); topicsPath != "" {
		topics, err := csvio.ReadTopicsFile(topicsPath)
		if err != nil {
			return err
		}
		cfg.Topics = topics
		logger.Info("topic table overridden from CSV", "path", topicsPath, "rows", len(topics))
	}

	// Provider resolution happens once, up front: an unknown model name
	// fails the run here, never mid-batch.
	kind, err := llm.KindForModel(cfg.ModelName)
	if err != nil && !c.Bool("mock") {
		return err
	}

	var provider llm.Provider
	if c.Bool("mock") {
		provider = llm.NewMockProvider()
		kind = "mock"
	} else {
		provider, err = llm.New(kind, logger)
		if err != nil {
			return err
		}
	}

	mode := batch.RunAll
	if c.Bool("first-only") {
		mode = batch.RunFirstOnly
	}

	checker := langcheck.NewChecker()
	runner := &batch.Runner{
		Provider:   provider,
		Retry:      llm.NewRetryPolicy(logger),
		Logger:     logger,
		LangDetect: checker.Detect,
		Progress: func(done, total int, msg string) {
			logger.Info("progress", "fraction", fmt.Sprintf("%.2f", float64(done)/float64(total)), "status", msg)
		},
	}

	logger.Info("starting content generation",
		"model", cfg.ModelName, "provider", string(kind), "topics", len(cfg.Topics), "mode", string(mode))

	records, trace, err := runner.Run(c.Context, cfg, mode)
	if err != nil {
		return err
	}

	baseDir := c.String("out")
	topicInputs := make([]string, 0, len(records))
	for _, r := range records {
		topicInputs = append(topicInputs, r.TopicInput)
	}
	runID := artifacts.NewRunID(cfg.ModelName, topicInputs)
	runDir, err := artifacts.EnsureRunDir(baseDir, runID)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(runDir, artifacts.ResultsCSV)
	if err := csvio.WriteResultsFile(csvPath, records); err != nil {
		return err
	}

	summary := buildSummary(runID, string(kind), string(mode), cfg, records, trace)
	if err := artifacts.WriteSummary(baseDir, summary); err != nil {
		logger.Error("failed to write run summary", "error", err)
	}
	if err := artifacts.UpdateIndex(baseDir, summary); err != nil {
		logger.Error("failed to update run index", "error", err)
	}

	if !c.Bool("no-history") {
		if err := recordHistory(baseDir, runDir, summary, trace); err != nil {
			// History is bookkeeping; a failure here must not fail the run.
			logger.Error("failed to record run history", "error", err)
		}
	}

	logger.Info("generation complete",
		"topics", len(records),
		"fields_ok", summary.FieldsOK,
		"fields_failed", summary.FieldsFailed,
		"elapsed", time.Since(startTime).Round(time.Millisecond).String())
	fmt.Println(csvPath)
	return nil
}

func buildSummary(runID, provider, mode string, cfg *models.Config, records []models.OutputRecord, trace []batch.FieldResult) artifacts.RunSummary {
	s := artifacts.RunSummary{
		RunID:      runID,
		Created:    time.Now(),
		ModelName:  cfg.ModelName,
		Provider:   provider,
		Mode:       mode,
		TopicCount: len(records),
		ResultsCSV: artifacts.ResultsCSV,
	}
	for _, fr := range trace {
		if fr.OK {
			s.FieldsOK++
		} else {
			s.FieldsFailed++
		}
		if fr.Language != "" && s.BodyLanguage == "" {
			s.BodyLanguage = fr.Language
		}
	}
	for i, r := range records {
		if i == 3 {
			break
		}
		s.TopicsPreview = append(s.TopicsPreview, r.TopicInput)
	}
	return s
}

func recordHistory(baseDir, runDir string, s artifacts.RunSummary, trace []batch.FieldResult) error {
	database, err := dbpkg.Open(baseDir)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.InsertRun(dbpkg.Run{
		ExternalID:   s.RunID,
		ModelName:    s.ModelName,
		Provider:     s.Provider,
		Mode:         s.Mode,
		TopicCount:   s.TopicCount,
		FieldsOK:     s.FieldsOK,
		FieldsFailed: s.FieldsFailed,
		RunDir:       runDir,
	})
	if err != nil {
		return err
	}

	for _, fr := range trace {
		record := dbpkg.FieldRecord{
			RunID:      runID,
			TopicIndex: fr.TopicIndex,
			TopicInput: fr.TopicInput,
			Field:      fr.Field,
			Status:     dbpkg.StatusSuccess,
			Chars:      len(fr.Value),
		}
		if !fr.OK {
			record.Status = dbpkg.StatusFailed
			record.ErrorMessage = nullString(fr.Value)
			record.Chars = 0
		}
		if len(fr.MatchedInternal) > 0 {
			record.MatchedInternal = nullString(joinPipe(fr.MatchedInternal))
		}
		if len(fr.MatchedExternal) > 0 {
			record.MatchedExternal = nullString(joinPipe(fr.MatchedExternal))
		}
		if fr.Language != "" {
			record.Language = nullString(fr.Language)
		}
		if err := database.InsertFieldRecord(record); err != nil {
			return err
		}
	}
	return nil
}
