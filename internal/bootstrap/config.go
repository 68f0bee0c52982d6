// Package bootstrap wires configuration, infrastructure and the HTTP server
// of the UI server binary.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/destinity/erp-ui/config"
)

// InitLogger initializes the structured logger.
func InitLogger() *slog.Logger {
	return initLogger(os.Stdout, slog.LevelInfo)
}

func initLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if cfg.Backend.Parsed() == nil {
		return cfg, fmt.Errorf("parse config: BACKEND_URL %q is not an absolute URL", cfg.Backend.URL)
	}
	return cfg, nil
}
