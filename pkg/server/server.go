package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"punchline/pkg/apperr"
	"punchline/pkg/inference"
	"punchline/pkg/persona"
	"punchline/pkg/utils"
)

type Server struct {
	Echo       *echo.Echo
	Inferencer inference.Inferencer
	Catalog    *persona.Catalog

	// Timeout bounds each completion call. Zero leaves only the request
	// context in charge.
	Timeout time.Duration
	// Tokens counts prompt tokens for debug logging. Nil skips the count.
	Tokens func(text string) (int, error)
}

type Options struct {
	StaticDir string
	Timeout   time.Duration
	BodyLimit string
}

func NewServer(inf inference.Inferencer, catalog *persona.Catalog, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Echo:       e,
		Inferencer: inf,
		Catalog:    catalog,
		Timeout:    opts.Timeout,
	}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	if opts.BodyLimit == "" {
		opts.BodyLimit = "64K"
	}
	e.Use(middleware.BodyLimit(opts.BodyLimit))

	if dir := opts.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
				Root:    dir,
				Skipper: func(c echo.Context) bool { return strings.HasPrefix(c.Request().URL.Path, "/api") },
			}))
		} else {
			log.Warn("static directory unavailable, serving API only", "dir", dir)
		}
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.Echo.Group("/api")
	api.GET("/health", s.handleGetHealth)
	api.GET("/comedians", s.handleGetComedians)
	api.GET("/analysis/schema", s.handleGetAnalysisSchema)

	api.GET("/joke", s.handleJoke)
	api.POST("/joke", s.handleJoke)
	api.POST("/modify-joke", s.handlePostModifyJoke)
	api.POST("/analyze-joke", s.handlePostAnalyzeJoke)
}

// handleError renders every failure as {error, details?}.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := utils.ErrJSON(http.StatusText(code))

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		msg := fmt.Sprint(he.Message)
		if he.Internal != nil {
			body = utils.ErrJSON(msg, apperr.Message(he.Internal))
		} else {
			body = utils.ErrJSON(msg)
		}
	case errors.Is(err, apperr.ErrInvalidInput):
		code = http.StatusBadRequest
		body = utils.ErrJSON(apperr.Message(err))
	case errors.Is(err, apperr.ErrUpstream):
		body = utils.ErrJSON("Completion service failed", apperr.Message(err))
	default:
		log.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		log.Error("failed writing error response", "error", err)
	}
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}
