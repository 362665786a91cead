package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiInferencer struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiInferencer creates a new inferencer instance using the Gemini API.
func NewGeminiInferencer(ctx context.Context, apiKey string, model string) (*GeminiInferencer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiInferencer{
		client: client,
		apiKey: apiKey,
		model:  cmp.Or(model, defaultGeminiModel),
	}, nil
}

func (o *GeminiInferencer) ChangeConfig(ctx context.Context, config *genai.ClientConfig) error {
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return fmt.Errorf("gemini client: %w", err)
	}
	o.client = client
	return nil
}

func (o *GeminiInferencer) SetModel(model string) {
	o.model = model
}

func (o *GeminiInferencer) Model() string { return o.model }

// Infer maps the chat params onto a Gemini generation config and returns the
// plain-text output.
func (o *GeminiInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	params = copyParams(params)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		MaxOutputTokens:   int32(cmp.Or(params.MaxCompletionTokens.Value, 1024)),
		Temperature:       genai.Ptr(float32(cmp.Or(params.Temperature.Value, 0.7))),
		TopP:              genai.Ptr(float32(cmp.Or(params.TopP.Value, 1.0))),
	}

	result, err := o.client.Models.GenerateContent(
		ctx,
		cmp.Or(params.Model, o.model),
		genai.Text(user),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini inference error: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("empty completion content")
	}
	return text, nil
}

// Edit runs a revision. Sampling settings come from the caller's params, as
// for Infer.
func (o *GeminiInferencer) Edit(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	return o.Infer(ctx, params, system, user)
}

// Verify checks that the result is non-empty.
func (o *GeminiInferencer) Verify(ctx context.Context, result string) (bool, error) {
	return verify(result)
}
