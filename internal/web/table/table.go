// Package table renders record slices into a tbody.
package table

import (
	"html"
	"log/slog"

	"github.com/destinity/erp-ui/internal/web/dom"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const (
	// RowClass is applied to every rendered row.
	RowClass = "border-b hover:bg-purple-50 transition duration-150"
	// DefaultCellClass is used when a column has no class.
	DefaultCellClass = "p-4"

	actionsWrapperClass = "flex justify-center gap-2"
	actionButtonClass   = "p-2 rounded transition duration-150"
)

// Column describes one cell per record. Content returns raw markup; callers
// escape record values. index is the position within records.
type Column[T any] struct {
	Class   string
	Content func(rec T, index int) string
}

// Action describes a row button. Name selects the handler invoked on click.
type Action struct {
	Icon  string
	Color string
	Title string
	Name  string
}

// Handlers maps action names to the function called with the row id.
type Handlers map[string]func(id string)

// Options tunes Render.
type Options[T any] struct {
	Actions  []Action
	Handlers Handlers
	// ID returns the record identifier passed to handlers.
	ID     func(rec T) string
	Logger *slog.Logger
}

func (o Options[T]) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Render replaces the children of the element with id targetID with one row per record.
func Render[T any](doc dom.Document, targetID string, records []T, columns []Column[T], opts Options[T]) error {
	target := doc.GetElementByID(targetID)
	if !dom.Valid(target) {
		return apperrors.TargetNotFound(targetID)
	}

	target.SetInnerHTML("")
	for i, rec := range records {
		tr := doc.CreateElement("tr")
		tr.SetClassName(RowClass)

		for _, col := range columns {
			td := doc.CreateElement("td")
			cls := col.Class
			if cls == "" {
				cls = DefaultCellClass
			}
			td.SetClassName(cls)
			if col.Content != nil {
				td.SetInnerHTML(col.Content(rec, i))
			}
			tr.AppendChild(td)
		}

		if len(opts.Actions) > 0 {
			id := ""
			if opts.ID != nil {
				id = opts.ID(rec)
			}
			tr.AppendChild(actionsCell(doc, id, opts))
		}
		target.AppendChild(tr)
	}
	return nil
}

func actionsCell[T any](doc dom.Document, id string, opts Options[T]) dom.Element {
	td := doc.CreateElement("td")
	td.SetClassName(DefaultCellClass)
	wrapper := doc.CreateElement("div")
	wrapper.SetClassName(actionsWrapperClass)

	for _, action := range opts.Actions {
		btn := doc.CreateElement("button")
		btn.SetClassName(action.Color + " " + actionButtonClass)
		btn.SetAttribute("title", action.Title)
		btn.SetAttribute("data-action", action.Name)
		btn.SetAttribute("data-id", id)
		btn.SetInnerHTML(`<i class="ph ` + html.EscapeString(action.Icon) + `"></i>`)

		name := action.Name
		btn.AddEventListener("click", func(dom.Event) {
			fn, ok := opts.Handlers[name]
			if !ok || fn == nil {
				opts.logger().Debug("no handler for row action", "action", name, "id", id)
				return
			}
			fn(id)
		})
		wrapper.AppendChild(btn)
	}

	td.AppendChild(wrapper)
	return td
}
