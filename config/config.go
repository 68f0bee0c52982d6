package config

import (
	"os"
	"strings"
)

// AppConfig is the configuration of the UI server. It composes the
// domain-specific structs declared in the other files of this package.
//
// Values are loaded from environment variables with
// github.com/caarlos0/env:
//   - http.go: listener, base path and compression
//   - backend.go: REST backend the API proxy forwards to
//   - redis.go: logout revocation store
//   - ui.go: page defaults and metrics
type AppConfig struct {
	// IsDev serves templates and static files from disk instead of the embedded copies.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	HTTP    HTTPConfig
	Backend BackendConfig `envPrefix:"BACKEND_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	UI      UIConfig      `envPrefix:"UI_"`
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Redis.Sanitize()
	c.UI.Sanitize()
	c.Metrics.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks NODE_ENV as a fallback for DEV.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
