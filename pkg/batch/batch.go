// Package batch drives the sequential generation pipeline: topics in table
// order, fields in fixed order, one model call at a time.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bastianw/seo-content-engine/models"
	"github.com/bastianw/seo-content-engine/pkg/links"
	"github.com/bastianw/seo-content-engine/pkg/llm"
	"github.com/bastianw/seo-content-engine/pkg/prompt"
)

// ErrNoTopics is reported when a run starts with an empty topic table.
var ErrNoTopics = errors.New("no topics to process")

// errNoPrompt is the field marker for a missing template entry.
const errNoPrompt = "ERROR: No Prompt"

// defaultFieldPause is cosmetic pacing between field calls, not a
// correctness requirement.
const defaultFieldPause = 50 * time.Millisecond

// RunMode selects how much of the topic table a run processes.
type RunMode string

const (
	// RunAll processes every topic row.
	RunAll RunMode = "all"
	// RunFirstOnly processes only row 0, for quick prompt iteration.
	RunFirstOnly RunMode = "first_only"
)

// Progress receives per-topic status: a monotone fraction done/total and a
// human-readable message.
type Progress func(done, total int, msg string)

// FieldResult records one field call's outcome for reporting.
type FieldResult struct {
	TopicIndex      int
	TopicInput      string
	Field           string
	OK              bool
	Value           string
	MatchedInternal []string // body field only
	MatchedExternal []string // body field only
	Language        string   // detected body language, informational
}

// Runner executes batch generation runs against one resolved provider.
type Runner struct {
	Provider llm.Provider
	Retry    llm.RetryPolicy
	Logger   *slog.Logger
	Progress Progress

	// FieldPause overrides the inter-field pause; negative disables it.
	FieldPause time.Duration

	// LangDetect, when set, classifies successful body text. Informational.
	LangDetect func(text string) (string, bool)
}

// Run processes the configured topics and returns one complete output
// record per processed row plus the per-field trace. A field failure never
// aborts the topic or the batch; failures land in the record as terminal
// error strings.
func (r *Runner) Run(ctx context.Context, cfg *models.Config, mode RunMode) ([]models.OutputRecord, []FieldResult, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	topics := cfg.Topics
	if len(topics) == 0 {
		return nil, nil, ErrNoTopics
	}
	if mode == RunFirstOnly {
		topics = topics[:1]
		logger.Info("test mode: processing only the first topic", "topic", topics[0].TopicInput)
	}

	pause := r.FieldPause
	if pause == 0 {
		pause = defaultFieldPause
	}

	internal := links.ParseList(cfg.ApprovedInternalLinks)
	external := links.ParseList(cfg.ApprovedExternalLinks)

	records := make([]models.OutputRecord, 0, len(topics))
	var trace []FieldResult

	for i, topic := range topics {
		r.report(i, len(topics), fmt.Sprintf("processing %q (%d of %d)", topic.TopicInput, i+1, len(topics)))

		record := models.OutputRecord{
			TopicInput:        topic.TopicInput,
			PrimaryKeyword:    topic.PrimaryKeyword,
			SecondaryKeywords: topic.SecondaryKeywords,
		}
		ctxMap := prompt.BuildContext(cfg, topic)

		for _, field := range models.GeneratedFields {
			fr := FieldResult{TopicIndex: i, TopicInput: topic.TopicInput, Field: field}

			template, ok := cfg.Prompts[field]
			if !ok || template == "" {
				logger.Warn("prompt template missing, skipping field",
					"field", field, "topic", topic.TopicInput)
				record.SetField(field, errNoPrompt)
				fr.Value = errNoPrompt
				trace = append(trace, fr)
				continue
			}

			logger.Info("generating field", "field", field, "topic", topic.TopicInput)
			resolved := prompt.Resolve(template, ctxMap)
			text, err := r.Retry.Do(ctx, r.Provider, llm.Request{
				Prompt:      resolved,
				Model:       cfg.ModelName,
				Temperature: cfg.Temperature,
			})
			if err != nil {
				record.SetField(field, err.Error())
				fr.Value = err.Error()
			} else {
				record.SetField(field, text)
				fr.OK = true
				fr.Value = text
			}

			// The auditor runs only on confirmed-successful body text;
			// error markers are never scanned for URLs.
			if field == models.FieldMainTextHTML && fr.OK {
				mi, me := links.Audit(text, internal, external)
				record.FoundInternalLinks = links.Joined(mi)
				record.FoundExternalLinks = links.Joined(me)
				fr.MatchedInternal = mi
				fr.MatchedExternal = me

				if r.LangDetect != nil {
					if lang, ok := r.LangDetect(text); ok {
						fr.Language = lang
						logger.Info("body language detected", "topic", topic.TopicInput, "language", lang)
					}
				}
			}

			trace = append(trace, fr)
			if pause > 0 {
				time.Sleep(pause)
			}
		}

		records = append(records, record)
		r.report(i+1, len(topics), fmt.Sprintf("completed %d of %d", i+1, len(topics)))
	}

	logger.Info("batch complete", "topics", len(records), "failed_fields", countFailed(trace))
	return records, trace, nil
}

func (r *Runner) report(done, total int, msg string) {
	if r.Progress != nil {
		r.Progress(done, total, msg)
	}
}

func countFailed(trace []FieldResult) int {
	n := 0
	for _, fr := range trace {
		if !fr.OK {
			n++
		}
	}
	return n
}

// IsErrorValue reports whether a stored field value is a terminal error
// marker rather than generated content.
func IsErrorValue(v string) bool {
	return strings.HasPrefix(v, "ERROR: ")
}
