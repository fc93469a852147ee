package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	// DefaultMaxAttempts is the fixed attempt limit per field call.
	DefaultMaxAttempts = 3
	// DefaultBaseDelay is the linear backoff unit: attempt i waits i*base.
	DefaultBaseDelay = 5 * time.Second
)

// RetryPolicy wraps a provider call in a fixed-count retry loop with linear
// backoff. Deliberately no jitter and no exponential growth: this is a
// low-volume, human-supervised batch tool.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *slog.Logger

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// NewRetryPolicy returns the pipeline's standard policy.
func NewRetryPolicy(logger *slog.Logger) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		Logger:      logger,
	}
}

// Do invokes the provider up to MaxAttempts times. On success it returns
// the generated text; otherwise it returns a *TerminalError whose Error()
// string is the exact marker stored in the output record. A missing
// credential never retries.
func (p RetryPolicy) Do(ctx context.Context, prov Provider, req Request) (string, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	base := p.BaseDelay
	if base <= 0 {
		base = DefaultBaseDelay
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		logger.Info("model call attempt",
			"provider", prov.Name(), "model", req.Model, "attempt", attempt)

		text, err := prov.Invoke(ctx, req)
		if err == nil {
			logger.Info("model call succeeded",
				"provider", prov.Name(), "attempt", attempt, "preview", preview(text))
			return text, nil
		}

		var ce *CallError
		if !errors.As(err, &ce) {
			ce = &CallError{Kind: TransportOrProviderError, Reason: err.Error(), Err: err}
		}
		logger.Warn("model call failed",
			"provider", prov.Name(), "attempt", attempt, "error", ce.Error())

		if !ce.Retryable() || attempt == attempts {
			return "", terminalFor(ce)
		}
		// Linear backoff: 1*base after attempt 1, 2*base after attempt 2...
		sleep(base * time.Duration(attempt))
	}
	return "", &TerminalError{msg: errMaxRetries}
}
