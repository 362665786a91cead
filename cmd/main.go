package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charm "github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"punchline/pkg/config"
	"punchline/pkg/inference"
	"punchline/pkg/persona"
	"punchline/pkg/server"
	"punchline/pkg/utils"
)

var echoLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
}

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	cfg, err := config.FromEnv()
	if err != nil {
		charm.Fatal("invalid configuration", "error", err)
	}
	if lvl, err := charm.ParseLevel(cfg.LogLevel); err == nil {
		charm.SetLevel(lvl)
	}

	catalog := persona.Default()
	if cfg.PersonasFile != "" {
		catalog, err = persona.Load(cfg.PersonasFile)
		if err != nil {
			charm.Fatal("failed loading personas", "file", cfg.PersonasFile, "error", err)
		}
	}
	charm.Info("personas loaded", "count", catalog.Len())

	inf, err := newInferencer(ctx, cfg)
	if err != nil {
		charm.Fatal("failed creating completion client", "error", err)
	}

	srv := server.NewServer(inf, catalog, server.Options{
		StaticDir: cfg.StaticDir,
		Timeout:   cfg.CompletionTimeout,
	})
	srv.Echo.Logger.SetLevel(echoLevels[cfg.LogLevel])
	if cfg.LogLevel == "debug" {
		srv.Tokens = utils.NumTokensFromMessages
	}

	finishedShutDown := make(chan struct{})
	go func() {
		defer close(finishedShutDown)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			charm.Error("shutdown failed", "error", err)
		}
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		charm.Error("server stopped", "error", err)
		done()
		os.Exit(1)
	}
	<-finishedShutDown
}

func newInferencer(ctx context.Context, cfg config.Config) (inference.Inferencer, error) {
	name, creds := cfg.Resolve()
	charm.Info("completion provider selected", "provider", name, "model", creds.Model)

	switch name {
	case config.Gemini:
		return inference.NewGeminiInferencer(ctx, creds.APIKey, creds.Model)
	case config.Anthropic:
		return inference.NewAnthropicInferencer(creds.APIKey, creds.Model), nil
	case config.Local:
		utils.Logf("No provider key configured, using local endpoint %s", creds.BaseURL)
		o := inference.NewProviderInferencer(inference.Provider{Name: config.Local, BaseURL: creds.BaseURL}, "", creds.Model)
		return o, nil
	default:
		o := inference.NewProviderInferencer(inference.Providers[name], creds.APIKey, creds.Model)
		if creds.BaseURL != "" {
			o.ChangeBaseURL(creds.BaseURL)
		}
		return o, nil
	}
}
