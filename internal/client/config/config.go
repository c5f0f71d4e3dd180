// Package config loads runtime settings for the admin console.
//
// Sources are layered, later ones overriding earlier ones:
// defaults -> environment -> JSON file -> command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the admin console.
type Config struct {
	// BaseURL is the backend API root, e.g. "http://127.0.0.1:3000/api".
	BaseURL string `env:"QUIZADMIN_API_URL"`

	// HTTPTimeout bounds each backend request as a whole.
	HTTPTimeout time.Duration `env:"QUIZADMIN_HTTP_TIMEOUT"`

	// TokenFile is where the bearer token is persisted between runs.
	// It is the console's only durable local state.
	TokenFile string `env:"QUIZADMIN_TOKEN_FILE"`

	// LogLevel is the slog level (0 = Info, -4 = Debug).
	LogLevel int `env:"QUIZADMIN_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:3000/api"
	c.HTTPTimeout = 30 * time.Second
	c.TokenFile = defaultTokenFile()
	c.LogLevel = 0
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".quizadmin_token"
	}
	return filepath.Join(dir, "quizadmin", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
