package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/openai/openai-go/v3"

	"punchline/pkg/apperr"
	"punchline/pkg/prompt"
)

type completionKind string

const (
	kindGenerate completionKind = "generate"
	kindRevise   completionKind = "revise"
	kindAnalyze  completionKind = "analyze"
)

// complete runs one completion for p. Failures come back as
// apperr.UpstreamError; nothing is retried.
func (s *Server) complete(c echo.Context, kind completionKind, p prompt.Prompt) (string, error) {
	ctx := c.Request().Context()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	if s.Tokens != nil {
		if n, err := s.Tokens(p.System + "\n" + p.User); err == nil {
			log.Debug("prompt tokens", "kind", kind, "tokens", n, "max_tokens", p.MaxTokens, "request_id", requestID)
		}
	}

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(p.MaxTokens),
		Temperature:         openai.Float(p.Temperature),
	}
	run := s.Inferencer.Infer
	if kind == kindRevise {
		run = s.Inferencer.Edit
	}

	start := time.Now()
	result, err := run(ctx, params, p.System, p.User)
	if err != nil {
		log.Error("completion failed", "kind", kind, "request_id", requestID, "error", err)
		return "", apperr.Upstream(err)
	}
	result = strings.TrimSpace(result)
	if ok, err := s.Inferencer.Verify(ctx, result); !ok {
		if err == nil {
			err = errors.New("completion rejected")
		}
		log.Error("completion unusable", "kind", kind, "request_id", requestID, "error", err)
		return "", apperr.Upstream(err)
	}

	log.Info("completion finished", "kind", kind, "request_id", requestID, "took", time.Since(start).Round(time.Millisecond))
	return result, nil
}
