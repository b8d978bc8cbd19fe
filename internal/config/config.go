package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton so late-bound collaborators (crontab jobs) can
// observe reloads without re-wiring.
var globalConfig *Config

// DefaultSystemPrompt seeds every new transcript. The assistant
// behavior text can be overridden via env or the profile file.
const DefaultSystemPrompt = "You are a helpful assistant. Reply using short and precise sentences."

// Config holds all environment backed configuration for quill-server.
type Config struct {
	// HTTP Server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Chat completion provider (any OpenAI-compatible endpoint)
	ChatAPIBaseURL    string        `env:"CHAT_API_BASE_URL" envDefault:"https://api.openai.com/v1"`
	ChatAPIKey        string        `env:"CHAT_API_KEY"`
	ChatModel         string        `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
	SystemPrompt      string        `env:"SYSTEM_PROMPT"`
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`

	// Widget profile (optional YAML overrides)
	ProfileFile string   `env:"QUILL_PROFILE_FILE"`
	Profile     *Profile `env:"-"`

	// Sessions
	SessionCookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"quill_session"`
	SessionIdleTimeout   time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	SessionSweepMinutes  int           `env:"SESSION_SWEEP_INTERVAL_MINUTES" envDefault:"5"`
	SessionSweepDisabled bool          `env:"SESSION_SWEEP_DISABLED" envDefault:"false"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"quill-server"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"quill"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.ChatAPIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ChatAPIBaseURL), "/")
	if cfg.ChatAPIBaseURL == "" {
		return nil, fmt.Errorf("CHAT_API_BASE_URL must not be empty")
	}
	if _, err := url.ParseRequestURI(cfg.ChatAPIBaseURL); err != nil {
		return nil, fmt.Errorf("CHAT_API_BASE_URL is not a valid URL: %w", err)
	}

	if profileFile := strings.TrimSpace(cfg.ProfileFile); profileFile != "" {
		profile, err := LoadProfile(profileFile)
		if err != nil {
			return nil, fmt.Errorf("load widget profile: %w", err)
		}
		cfg.Profile = profile
		cfg.applyProfile(profile)
	}

	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}

	cfg.EnvReloadedAt = time.Now()
	globalConfig = cfg
	return cfg, nil
}

// GetGlobal returns the process-wide configuration, or nil before Load.
func GetGlobal() *Config {
	return globalConfig
}

func (c *Config) applyProfile(p *Profile) {
	if p == nil {
		return
	}
	if p.SystemPrompt != "" {
		c.SystemPrompt = p.SystemPrompt
	}
	if p.Model != "" {
		c.ChatModel = p.Model
	}
}
