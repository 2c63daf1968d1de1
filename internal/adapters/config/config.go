package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"hermes/pkg/errors"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	AI            AIConfig
	Search        SearchConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"hermes"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"APP_VERSION" default:"dev"`
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

// AIConfig carries the completion backend credential and model defaults.
// The key is a startup requirement: the service refuses to boot without it.
type AIConfig struct {
	OpenAIKey     string        `envconfig:"OPENAI_API_KEY" required:"true"`
	Model         string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout       time.Duration `envconfig:"OPENAI_TIMEOUT" default:"60s"`
	RatePerMinute float64       `envconfig:"OPENAI_RATE_PER_MINUTE" default:"500"`
}

// SearchConfig carries the web-search backend credential.
type SearchConfig struct {
	SerperKey     string        `envconfig:"SERPER_API_KEY" required:"true"`
	Endpoint      string        `envconfig:"SERPER_ENDPOINT" default:"https://google.serper.dev/search"`
	Timeout       time.Duration `envconfig:"SERPER_TIMEOUT" default:"15s"`
	RatePerMinute float64       `envconfig:"SERPER_RATE_PER_MINUTE" default:"100"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables.
// It first tries to load a .env file (useful for local development),
// then populates the config structs. Missing required secrets are a
// fatal startup condition, not a per-request error.
func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}

	return &cfg, nil
}
