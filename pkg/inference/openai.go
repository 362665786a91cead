package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// Provider is an OpenAI-compatible endpoint with its default model.
type Provider struct {
	Name    string
	BaseURL string
	Model   string
}

var (
	OpenAI   = Provider{Name: "openai", Model: "gpt-4"}
	Grok     = Provider{Name: "grok", BaseURL: "https://api.x.ai/v1", Model: "grok-4-fast-reasoning"}
	Kimi     = Provider{Name: "kimi", BaseURL: "https://api.kimi.com/coding/v1", Model: "kimi-for-coding"}
	Moonshot = Provider{Name: "moonshot", BaseURL: "https://api.moonshot.ai/v1", Model: "kimi-k2-5"}
)

// Providers lists the OpenAI-compatible presets by name.
var Providers = map[string]Provider{
	OpenAI.Name:   OpenAI,
	Grok.Name:     Grok,
	Kimi.Name:     Kimi,
	Moonshot.Name: Moonshot,
}

// OpenAIInferencer implements Inferencer using OpenAI's official Go SDK. It
// serves any OpenAI-compatible provider.
type OpenAIInferencer struct {
	client   *openai.Client
	provider string
	apiKey   string
	model    string
}

// NewOpenAIInferencer creates a new inferencer instance using OpenAI client.
func NewOpenAIInferencer(apiKey string, model string) *OpenAIInferencer {
	return NewProviderInferencer(OpenAI, apiKey, model)
}

// NewProviderInferencer creates an inferencer for an OpenAI-compatible
// provider. An empty model falls back to the provider's default.
func NewProviderInferencer(p Provider, apiKey string, model string) *OpenAIInferencer {
	o := &OpenAIInferencer{
		provider: cmp.Or(p.Name, OpenAI.Name),
		apiKey:   apiKey,
		model:    cmp.Or(model, p.Model),
	}
	o.ChangeBaseURL(p.BaseURL)
	return o
}

// ChangeBaseURL points the client at another endpoint. An empty baseURL
// restores the SDK default.
func (o *OpenAIInferencer) ChangeBaseURL(baseURL string) {
	opts := []option.RequestOption{option.WithAPIKey(o.apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	o.client = &client
}

func (o *OpenAIInferencer) SetModel(model string) {
	o.model = model
}

func (o *OpenAIInferencer) Model() string { return o.model }

// Infer sends text to the chat completion endpoint and returns the output.
func (o *OpenAIInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	params = copyParams(params)
	params.Model = cmp.Or(params.Model, o.model)
	params.Messages = []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Role: "system",
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: param.Opt[string]{Value: system},
				},
			}},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Role: "user",
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: param.Opt[string]{Value: user},
				},
			},
		},
	}

	params.MaxCompletionTokens = openai.Int(cmp.Or(params.MaxCompletionTokens.Value, 1024))
	params.Temperature = openai.Float(cmp.Or(params.Temperature.Value, 0.7))
	params.TopP = openai.Float(cmp.Or(params.TopP.Value, 1.0))

	resp, err := o.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return "", fmt.Errorf("%s inference error: %w", o.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("empty completion content")
	}

	return content, nil
}

// Edit runs a revision. Sampling settings come from the caller's params, as
// for Infer.
func (o *OpenAIInferencer) Edit(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	return o.Infer(ctx, params, system, user)
}

// Verify checks that the result is non-empty.
func (o *OpenAIInferencer) Verify(ctx context.Context, result string) (bool, error) {
	return verify(result)
}

func verify(result string) (bool, error) {
	if strings.TrimSpace(result) == "" {
		return false, errors.New("empty result")
	}
	return true, nil
}
