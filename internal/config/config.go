package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/utils"
)

// Config holds application configuration
type Config struct {
	Port           string        `env:"PORT" envDefault:"8000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	// Now pins the analyzers' clock. Empty means wall-clock time.
	Now     string `env:"ADVISOR_NOW"`
	KeyRate KeyRate
}

// KeyRate configures the central bank key rate integration
type KeyRate struct {
	URL      string        `env:"KEY_RATE_URL"` // empty disables the integration
	Schedule string        `env:"KEY_RATE_SCHEDULE" envDefault:"@every 1h"`
	Margin   float64       `env:"KEY_RATE_MARGIN" envDefault:"5"`
	Timeout  time.Duration `env:"KEY_RATE_TIMEOUT" envDefault:"10s"`
}

// NewConfig loads configuration from the given env files and the environment.
// Without arguments it reads ./.env when present.
func NewConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS is required")
	}
	if _, err := cfg.FixedNow(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FixedNow returns the pinned clock time, if one is configured
func (c *Config) FixedNow() (*time.Time, error) {
	if c.Now == "" {
		return nil, nil
	}
	t, err := utils.ParseDateTime(c.Now)
	if err != nil {
		return nil, fmt.Errorf("ADVISOR_NOW: %w", err)
	}
	return &t, nil
}

// KeyRateEnabled reports whether the key rate integration is configured
func (c *Config) KeyRateEnabled() bool {
	return c.KeyRate.URL != ""
}
