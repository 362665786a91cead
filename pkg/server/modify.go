package server

import (
	"cmp"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"punchline/pkg/apperr"
	"punchline/pkg/prompt"
	"punchline/pkg/utils"
)

type modifyReq struct {
	OriginalJoke string `json:"originalJoke" form:"originalJoke"`
	// Joke is accepted in place of OriginalJoke.
	Joke     string `json:"joke" form:"joke"`
	Feedback string `json:"feedback" form:"feedback"`
	Topic    string `json:"topic" form:"topic"`
	Voice    string `json:"voice" form:"voice"`
}

type modifyResp struct {
	Joke     string            `json:"joke"`
	Comedian string            `json:"comedian"`
	Changes  []utils.WordDelta `json:"changes"`
}

// POST /api/modify-joke
func (s *Server) handlePostModifyJoke(c echo.Context) error {
	var req modifyReq
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request in /api/modify-joke", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	original := cmp.Or(strings.TrimSpace(req.OriginalJoke), strings.TrimSpace(req.Joke))
	if original == "" || strings.TrimSpace(req.Feedback) == "" {
		return apperr.Invalid("Original joke and feedback are required")
	}
	p, err := s.lookupVoice(req.Voice)
	if err != nil {
		return err
	}
	pr, err := prompt.Revision(p, original, req.Feedback, req.Topic)
	if err != nil {
		return err
	}

	revised, err := s.complete(c, kindRevise, pr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to modify joke", apperr.Message(err)))
	}

	changes := utils.DiffWords(original, revised)
	log.Info("joke modified", "voice", p.ID, "changes", len(changes))
	return c.JSON(http.StatusOK, modifyResp{Joke: revised, Comedian: p.Name, Changes: changes})
}
