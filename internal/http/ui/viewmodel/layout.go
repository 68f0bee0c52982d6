// Package viewmodel holds the data passed to the page templates.
package viewmodel

// Layout captures shared chrome metadata and the body attributes the
// browser app boots from.
type Layout struct {
	Title        string
	PageTitle    string
	CurrentPage  string // data-page
	BasePath     string // data-base-path
	ItemsPerPage int    // data-items-per-page
	ShowChrome   bool
	RequestID    string
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}

// List describes the table a list page renders into.
type List struct {
	TableID      string
	PaginationID string
	Headers      []string
	// EmptyText is shown until the browser app fills the table.
	EmptyText string
}

// Page is the data of one rendered page.
type Page struct {
	Layout Layout
	List   *List
}

// LayoutData implements LayoutProvider.
func (p *Page) LayoutData() *Layout { return &p.Layout }
