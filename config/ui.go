package config

import "strings"

// DefaultItemsPerPage is the list page size written into every page.
const DefaultItemsPerPage = 5

// UIConfig holds values rendered into the pages for the browser app.
type UIConfig struct {
	ItemsPerPage int `env:"ITEMS_PER_PAGE" envDefault:"5"`
}

// Sanitize clamps ItemsPerPage to 1..100.
func (u *UIConfig) Sanitize() {
	if u.ItemsPerPage < 1 {
		u.ItemsPerPage = DefaultItemsPerPage
	}
	if u.ItemsPerPage > 100 {
		u.ItemsPerPage = 100
	}
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH"    envDefault:"/metrics"`
}

// Sanitize gives Path a leading slash and disables metrics when it is blank.
func (m *MetricsConfig) Sanitize() {
	m.Path = strings.TrimSpace(m.Path)
	if m.Path == "" {
		m.Enabled = false
		return
	}
	if !strings.HasPrefix(m.Path, "/") {
		m.Path = "/" + m.Path
	}
}
