// Package pages contains the page controllers of the browser app.
package pages

import (
	"context"
	"log/slog"
	"sync"

	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/pagination"
	"github.com/destinity/erp-ui/internal/web/table"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 5

// ListState is the client-side state of a list page.
type ListState[T any] struct {
	Items       []T
	CurrentPage int
	PerPage     int
}

// List loads every record once and pages through them locally.
type List[T any] struct {
	Doc          dom.Document
	Fetch        func(ctx context.Context) ([]T, error)
	TableID      string
	PaginationID string
	Columns      []table.Column[T]
	Actions      []table.Action
	Handlers     table.Handlers
	ID           func(rec T) string
	PerPage      int
	// Name labels log lines, e.g. "empleados".
	Name   string
	Logger *slog.Logger

	mu    sync.Mutex
	state ListState[T]
}

func (l *List[T]) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func (l *List[T]) perPage() int {
	if l.PerPage > 0 {
		return l.PerPage
	}
	return DefaultPerPage
}

// Load fetches the records and shows the first page. Fetch failures are
// logged and leave an empty table; a cancelled fetch renders nothing.
func (l *List[T]) Load(ctx context.Context) error {
	var items []T
	if l.Fetch != nil {
		var err error
		items, err = l.Fetch(ctx)
		if err != nil {
			if apperrors.IsCanceled(err) || ctx.Err() != nil {
				l.logger().Debug("list fetch abandoned", "list", l.Name, "error", err)
				return nil
			}
			l.logger().Error("Error al obtener "+l.Name, "error", err)
			items = nil
		}
	}

	l.mu.Lock()
	l.state = ListState[T]{Items: items, CurrentPage: 1, PerPage: l.perPage()}
	l.mu.Unlock()
	return l.ShowPage(1)
}

// ShowPage renders page of the loaded records along with the pager.
// Out-of-range pages are clamped.
func (l *List[T]) ShowPage(page int) error {
	l.mu.Lock()
	per := l.perPage()
	items := l.state.Items
	w := pagination.Compute(len(items), per, page)
	l.state.CurrentPage = w.Current
	l.state.PerPage = per
	l.mu.Unlock()

	var paged []T
	if w.From > 0 {
		paged = items[w.From-1 : w.To]
	}

	if err := table.Render(l.Doc, l.TableID, paged, l.Columns, table.Options[T]{
		Actions:  l.Actions,
		Handlers: l.Handlers,
		ID:       l.ID,
		Logger:   l.Logger,
	}); err != nil {
		return err
	}

	return pagination.Render(l.Doc, l.PaginationID, len(items), per, w.Current, func(p int) {
		if err := l.ShowPage(p); err != nil {
			l.logger().Error("render page failed", "list", l.Name, "page", p, "error", err)
		}
	})
}

// State returns a copy of the current state.
func (l *List[T]) State() ListState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	s.Items = append([]T(nil), l.state.Items...)
	return s
}
