package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// Inferencer defines an interface for running model inference and verification.
// Every gateway takes its sampling settings as openai chat params, whatever
// the backing provider.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Edit(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Verify(ctx context.Context, result string) (bool, error)
}

// copyParams returns a shallow copy of params so gateways can fill defaults
// without touching the caller's value.
func copyParams(params *openai.ChatCompletionNewParams) *openai.ChatCompletionNewParams {
	if params == nil {
		return new(openai.ChatCompletionNewParams)
	}
	cp := *params
	return &cp
}
