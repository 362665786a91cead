package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"punchline/pkg/schema"
)

func (s *Server) handleGetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/comedians
func (s *Server) handleGetComedians(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Catalog.List())
}

// GET /api/analysis/schema
func (s *Server) handleGetAnalysisSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.AnalysisSchema)
}
