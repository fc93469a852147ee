package llm

import (
	"context"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens caps response length; generous enough for a full
// article body.
const anthropicMaxTokens = 2000

// AnthropicProvider invokes the Messages API through anthropic-sdk-go.
type AnthropicProvider struct {
	apiKey string
	logger *slog.Logger
}

func (p *AnthropicProvider) Name() string { return string(KindAnthropic) }

func (p *AnthropicProvider) Invoke(ctx context.Context, req Request) (string, error) {
	if p.apiKey == "" {
		return "", &CallError{Kind: MissingCredential, Reason: EnvAnthropicKey + " not configured"}
	}

	client := anthropic.NewClient(option.WithAPIKey(p.apiKey))
	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", &CallError{Kind: TransportOrProviderError, Reason: err.Error(), Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &CallError{Kind: EmptyOrFiltered, Reason: "response empty or not text"}
	}
	return text, nil
}
