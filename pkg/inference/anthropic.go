package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go/v3"
)

const defaultClaudeModel = "claude-haiku-4-5"

// AnthropicInferencer implements Inferencer on the Claude Messages API.
type AnthropicInferencer struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicInferencer creates a Claude inferencer. opts are applied after
// the API key.
func NewAnthropicInferencer(apiKey string, model string, opts ...option.RequestOption) *AnthropicInferencer {
	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &AnthropicInferencer{
		client: &client,
		model:  cmp.Or(model, defaultClaudeModel),
	}
}

func (a *AnthropicInferencer) SetModel(model string) {
	a.model = model
}

func (a *AnthropicInferencer) Model() string { return a.model }

// Infer sends one system/user exchange to Claude and returns the joined text
// blocks of the reply.
func (a *AnthropicInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	params = copyParams(params)
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cmp.Or(params.Model, a.model)),
		MaxTokens:   cmp.Or(params.MaxCompletionTokens.Value, 1024),
		Temperature: anthropic.Float(cmp.Or(params.Temperature.Value, 0.7)),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic inference error: %w", err)
	}

	text := strings.TrimSpace(extractText(message))
	if text == "" {
		return "", errors.New("empty completion content")
	}
	return text, nil
}

// Edit runs a revision. Sampling settings come from the caller's params, as
// for Infer.
func (a *AnthropicInferencer) Edit(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	return a.Infer(ctx, params, system, user)
}

func (a *AnthropicInferencer) Verify(ctx context.Context, result string) (bool, error) {
	return verify(result)
}

func extractText(msg *anthropic.Message) string {
	var parts []string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	return strings.Join(parts, "")
}
