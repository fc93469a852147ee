package llm

import (
	"context"
	"log/slog"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider invokes chat completions through the official openai-go SDK.
type OpenAIProvider struct {
	apiKey string
	logger *slog.Logger
}

func (p *OpenAIProvider) Name() string { return string(KindOpenAI) }

func (p *OpenAIProvider) Invoke(ctx context.Context, req Request) (string, error) {
	if p.apiKey == "" {
		return "", &CallError{Kind: MissingCredential, Reason: EnvOpenAIKey + " not configured"}
	}

	client := openai.NewClient(option.WithAPIKey(p.apiKey))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", &CallError{Kind: TransportOrProviderError, Reason: err.Error(), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &CallError{Kind: EmptyOrFiltered, Reason: "empty choices"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
