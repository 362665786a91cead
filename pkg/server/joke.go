package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"punchline/pkg/apperr"
	"punchline/pkg/persona"
	"punchline/pkg/prompt"
	"punchline/pkg/utils"
)

type jokeReq struct {
	Topic string `query:"topic" json:"topic" form:"topic"`
	Voice string `query:"voice" json:"voice" form:"voice"`
}

type jokeResp struct {
	Joke     string `json:"joke"`
	Comedian string `json:"comedian"`
}

// lookupVoice resolves a persona id, answering 400 for missing or unknown ids.
func (s *Server) lookupVoice(voice string) (persona.Persona, error) {
	p, err := s.Catalog.Get(voice)
	if err != nil {
		return persona.Persona{}, &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "Invalid or missing comedian voice",
			Internal: err,
		}
	}
	return p, nil
}

// GET or POST /api/joke
func (s *Server) handleJoke(c echo.Context) error {
	var req jokeReq
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request in /api/joke", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return apperr.Invalid("Topic is required")
	}
	p, err := s.lookupVoice(req.Voice)
	if err != nil {
		return err
	}
	pr, err := prompt.Generation(p, req.Topic)
	if err != nil {
		return err
	}

	joke, err := s.complete(c, kindGenerate, pr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to generate joke", apperr.Message(err)))
	}

	log.Info("joke generated", "voice", p.ID, "topic", utils.LimitStr(req.Topic, 64))
	return c.JSON(http.StatusOK, jokeResp{Joke: joke, Comedian: p.Name})
}
