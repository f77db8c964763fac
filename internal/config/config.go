// Package config loads chronod settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the daemon settings.
type Config struct {
	ListenAddr      string        `envconfig:"CHRONO_LISTEN_ADDR" default:"127.0.0.1:7420" validate:"required,hostname_port"`
	LogFormat       string        `envconfig:"CHRONO_LOG_FORMAT" default:"text" validate:"oneof=text json"`
	LogLevel        string        `envconfig:"CHRONO_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `envconfig:"CHRONO_SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	MaxTextLength   int           `envconfig:"CHRONO_MAX_TEXT_LENGTH" default:"64" validate:"min=1,max=1024"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names fall back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the structured logger configured by cfg.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true, Level: cfg.Level()}
	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
