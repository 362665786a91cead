package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"punchline/pkg/analysis"
	"punchline/pkg/apperr"
	"punchline/pkg/prompt"
	"punchline/pkg/utils"
)

type analyzeReq struct {
	Joke  string `json:"joke" form:"joke"`
	Voice string `json:"voice" form:"voice"`
}

type analyzeResp struct {
	Analysis    analysis.Record `json:"analysis"`
	RawAnalysis string          `json:"rawAnalysis"`
}

// POST /api/analyze-joke
func (s *Server) handlePostAnalyzeJoke(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request in /api/analyze-joke", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Joke) == "" {
		return apperr.Invalid("Joke is required")
	}
	p, err := s.lookupVoice(req.Voice)
	if err != nil {
		return err
	}
	pr, err := prompt.Analysis(p, req.Joke)
	if err != nil {
		return err
	}

	raw, err := s.complete(c, kindAnalyze, pr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to analyze joke", apperr.Message(err)))
	}
	rec, err := analysis.Parse(raw)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to analyze joke", apperr.Message(err)))
	}

	if missing := rec.Missing(); len(missing) > 0 {
		keys := make([]string, len(missing))
		for i, m := range missing {
			keys[i] = m.Key()
		}
		log.Warn("analysis degraded", "voice", p.ID, "missing", strings.Join(keys, ","))
	}
	return c.JSON(http.StatusOK, analyzeResp{Analysis: rec, RawAnalysis: rec.Raw()})
}
