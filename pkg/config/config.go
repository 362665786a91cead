package config

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"
)

// LocalBaseURL is the OpenAI-compatible endpoint used when no provider key is
// configured, e.g. LM Studio.
const LocalBaseURL = "http://localhost:1234/v1"

// Provider names accepted by LLM_PROVIDER.
const (
	Auto      = "auto"
	OpenAI    = "openai"
	Grok      = "grok"
	Kimi      = "kimi"
	Moonshot  = "moonshot"
	Gemini    = "gemini"
	Anthropic = "anthropic"
	Local     = "local"
)

// providerOrder is the auto-selection preference among configured keys.
var providerOrder = []string{OpenAI, Anthropic, Gemini, Grok, Kimi, Moonshot}

// Credentials configure one completion provider.
type Credentials struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Config struct {
	Port         string
	StaticDir    string
	PersonasFile string
	LogLevel     string

	// Provider is the requested provider name, Auto by default. Use Resolve
	// for the effective one.
	Provider          string
	Providers         map[string]Credentials
	CompletionTimeout time.Duration
}

// FromEnv reads the configuration from the process environment. A .env file
// is expected to be loaded beforehand.
func FromEnv() (Config, error) {
	c := Config{
		Port:         cmp.Or(os.Getenv("PORT"), "3000"),
		StaticDir:    cmp.Or(os.Getenv("STATIC_DIR"), "public"),
		PersonasFile: os.Getenv("PERSONAS_FILE"),
		LogLevel:     strings.ToLower(cmp.Or(os.Getenv("LOG_LEVEL"), "info")),
		Provider:     strings.ToLower(cmp.Or(strings.TrimSpace(os.Getenv("LLM_PROVIDER")), Auto)),
		Providers: map[string]Credentials{
			OpenAI: {
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				Model:   cmp.Or(os.Getenv("OPENAI_MODEL"), "gpt-4"),
				BaseURL: os.Getenv("OPENAI_BASE_URL"),
			},
			Grok:      {APIKey: os.Getenv("GROK_API_KEY"), Model: os.Getenv("GROK_MODEL")},
			Kimi:      {APIKey: os.Getenv("KIMI_API_KEY"), Model: os.Getenv("KIMI_MODEL")},
			Moonshot:  {APIKey: os.Getenv("MOONSHOT_API_KEY"), Model: os.Getenv("MOONSHOT_MODEL")},
			Gemini:    {APIKey: os.Getenv("GEMINI_API_KEY"), Model: os.Getenv("GEMINI_MODEL")},
			Anthropic: {APIKey: os.Getenv("ANTHROPIC_API_KEY"), Model: os.Getenv("ANTHROPIC_MODEL")},
		},
		CompletionTimeout: 60 * time.Second,
	}

	if v := os.Getenv("COMPLETION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("COMPLETION_TIMEOUT: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("COMPLETION_TIMEOUT: negative duration %s", v)
		}
		c.CompletionTimeout = d
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL: unknown level %q", c.LogLevel)
	}

	if c.Provider != Auto && c.Provider != Local {
		if _, ok := c.Providers[c.Provider]; !ok {
			return Config{}, fmt.Errorf("LLM_PROVIDER: unknown provider %q", c.Provider)
		}
	}
	return c, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Resolve returns the effective provider and its credentials. An explicit
// Provider wins; otherwise the first provider with a key, in providerOrder.
// With no key at all it falls back to Local.
func (c Config) Resolve() (string, Credentials) {
	if c.Provider != Auto && c.Provider != "" {
		if c.Provider == Local {
			return Local, c.local()
		}
		return c.Provider, c.Providers[c.Provider]
	}
	if i := slices.IndexFunc(providerOrder, func(name string) bool {
		return c.Providers[name].APIKey != ""
	}); i >= 0 {
		return providerOrder[i], c.Providers[providerOrder[i]]
	}
	return Local, c.local()
}

// local reuses the OpenAI model setting; OpenAI-compatible local servers
// reject requests without a model.
func (c Config) local() Credentials {
	openAI := c.Providers[OpenAI]
	return Credentials{
		BaseURL: cmp.Or(openAI.BaseURL, LocalBaseURL),
		Model:   openAI.Model,
	}
}
