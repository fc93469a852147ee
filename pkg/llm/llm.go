// Package llm dispatches generation calls to one of three model providers
// and wraps them in the batch pipeline's retry policy.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Kind identifies a supported provider. The set is closed: a model name
// that matches none of the prefixes is rejected at configuration-load time,
// never mid-batch.
type Kind string

const (
	KindGemini    Kind = "gemini"
	KindOpenAI    Kind = "openai"
	KindAnthropic Kind = "anthropic"
)

// Environment variables holding the per-provider credentials.
const (
	EnvGeminiKey    = "GEMINI_API_KEY"
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// KindForModel resolves the provider for a model name by prefix signature.
func KindForModel(model string) (Kind, error) {
	switch {
	case strings.Contains(model, "gemini"):
		return KindGemini, nil
	case strings.Contains(model, "gpt"):
		return KindOpenAI, nil
	case strings.Contains(model, "claude"):
		return KindAnthropic, nil
	default:
		return "", fmt.Errorf("unsupported model provider for model %q", model)
	}
}

// CredentialEnv returns the environment variable a provider reads its API
// key from.
func (k Kind) CredentialEnv() string {
	switch k {
	case KindGemini:
		return EnvGeminiKey
	case KindOpenAI:
		return EnvOpenAIKey
	case KindAnthropic:
		return EnvAnthropicKey
	}
	return ""
}

// Request is the immutable input to a single generation call.
type Request struct {
	Prompt      string
	Model       string
	Temperature float64
}

// Provider is one model backend. Invoke performs a single attempt; failure
// classification happens through *CallError.
type Provider interface {
	Name() string
	Invoke(ctx context.Context, req Request) (string, error)
}

// New builds the provider for a resolved Kind. The credential is captured
// from the environment here but only validated per call, so a key added
// mid-session is picked up by the next `generate` invocation, and a missing
// key fails the call rather than the program.
func New(kind Kind, logger *slog.Logger) (Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	apiKey := os.Getenv(kind.CredentialEnv())
	switch kind {
	case KindGemini:
		return &GeminiProvider{apiKey: apiKey, logger: logger}, nil
	case KindOpenAI:
		return &OpenAIProvider{apiKey: apiKey, logger: logger}, nil
	case KindAnthropic:
		return &AnthropicProvider{apiKey: apiKey, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported provider kind %q", kind)
	}
}

// preview truncates model output for log lines.
func preview(s string) string {
	const n = 100
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
