package llm

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider invokes the Gemini API through google.golang.org/genai.
type GeminiProvider struct {
	apiKey string
	logger *slog.Logger
}

func (p *GeminiProvider) Name() string { return string(KindGemini) }

func (p *GeminiProvider) Invoke(ctx context.Context, req Request) (string, error) {
	if p.apiKey == "" {
		return "", &CallError{Kind: MissingCredential, Reason: EnvGeminiKey + " not configured"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &CallError{Kind: TransportOrProviderError, Reason: err.Error(), Err: err}
	}

	temp := float32(req.Temperature)
	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature: &temp,
	})
	if err != nil {
		return "", &CallError{Kind: TransportOrProviderError, Reason: err.Error(), Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		reason := "Unknown"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = string(resp.PromptFeedback.BlockReason)
		}
		return "", &CallError{Kind: EmptyOrFiltered, Reason: reason}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &CallError{Kind: EmptyOrFiltered, Reason: "empty candidate text"}
	}
	return text, nil
}
