package config

import (
	"net/url"
	"strings"
	"time"
)

// BackendConfig points the API proxy at the REST backend.
type BackendConfig struct {
	// URL is the backend origin; request paths are preserved when proxying.
	URL string `env:"URL" envDefault:"http://localhost:8081"`

	// Timeout bounds a single proxied request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize trims the URL and restores the default timeout when it is not positive.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimRight(strings.TrimSpace(b.URL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 30 * time.Second
	}
}

// Parsed returns the backend URL, or nil when it is empty or not absolute.
func (b BackendConfig) Parsed() *url.URL {
	if b.URL == "" {
		return nil
	}
	u, err := url.Parse(b.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return u
}
