// Package pagination computes page windows and renders the pager control.
package pagination

import (
	"strconv"

	"github.com/destinity/erp-ui/internal/web/dom"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

// windowSize is the number of consecutive page buttons around the current page.
const windowSize = 3

// ItemKind tells a page button from an ellipsis.
type ItemKind int

const (
	ItemPage ItemKind = iota
	ItemEllipsis
)

// Item is one entry between the previous and next buttons.
type Item struct {
	Kind   ItemKind
	Page   int
	Active bool
}

// Window is the computed state of the pager for one render.
type Window struct {
	Total        int
	PerPage      int
	Current      int
	TotalPages   int
	From         int
	To           int
	Items        []Item
	PrevDisabled bool
	NextDisabled bool
}

// Compute returns the pager window for total records shown perPage at a
// time with current requested. current is clamped into [1, max(TotalPages, 1)].
func Compute(total, perPage, current int) Window {
	if total < 0 {
		total = 0
	}
	if perPage <= 0 {
		perPage = 1
	}

	totalPages := (total + perPage - 1) / perPage
	current = max(1, min(current, max(totalPages, 1)))

	w := Window{
		Total:        total,
		PerPage:      perPage,
		Current:      current,
		TotalPages:   totalPages,
		PrevDisabled: current <= 1,
		NextDisabled: current >= totalPages,
	}
	if total > 0 {
		w.From = (current-1)*perPage + 1
		w.To = min(current*perPage, total)
	}
	if totalPages == 0 {
		return w
	}

	start := max(current-1, 1)
	end := min(start+windowSize-1, totalPages)
	if end-start < windowSize-1 {
		start = max(end-(windowSize-1), 1)
	}

	if start > 1 {
		w.Items = append(w.Items, Item{Kind: ItemPage, Page: 1})
		if start > 2 {
			w.Items = append(w.Items, Item{Kind: ItemEllipsis})
		}
	}
	for p := start; p <= end; p++ {
		w.Items = append(w.Items, Item{Kind: ItemPage, Page: p, Active: p == current})
	}
	if end < totalPages {
		if end < totalPages-1 {
			w.Items = append(w.Items, Item{Kind: ItemEllipsis})
		}
		w.Items = append(w.Items, Item{Kind: ItemPage, Page: totalPages})
	}
	return w
}

// Pages returns the page numbers of the numbered buttons in order.
func (w Window) Pages() []int {
	var out []int
	for _, it := range w.Items {
		if it.Kind == ItemPage {
			out = append(out, it.Page)
		}
	}
	return out
}

const (
	wrapperClass  = "flex justify-between items-center mt-6 px-4 w-full"
	summaryClass  = "text-sm text-gray-500"
	controlsClass = "flex gap-2"
	navClass      = "px-3 py-1 rounded border text-gray-500 hover:bg-gray-50 disabled:opacity-50"
	activeClass   = "px-3 py-1 rounded border bg-purple-600 text-white"
	pageClass     = "px-3 py-1 rounded border text-gray-700 hover:bg-gray-50"
	dotsClass     = "px-3 py-1 rounded border text-gray-700"
)

// Render replaces the children of targetID with the pager for the given
// state. Clicks call onChange with the requested page; Render keeps no state.
func Render(doc dom.Document, targetID string, total, perPage, current int, onChange func(page int)) error {
	target := doc.GetElementByID(targetID)
	if !dom.Valid(target) {
		return apperrors.TargetNotFound(targetID)
	}
	w := Compute(total, perPage, current)

	target.SetInnerHTML("")
	wrapper := doc.CreateElement("div")
	wrapper.SetClassName(wrapperClass)

	summary := doc.CreateElement("div")
	summary.SetClassName(summaryClass)
	summary.SetInnerHTML(`Mostrando <span class="font-medium">` +
		strconv.Itoa(w.From) + "-" + strconv.Itoa(w.To) +
		`</span> de <span class="font-medium">` + strconv.Itoa(w.Total) + `</span> registros`)
	wrapper.AppendChild(summary)

	controls := doc.CreateElement("div")
	controls.SetClassName(controlsClass)

	change := func(page int) func(dom.Event) {
		return func(dom.Event) {
			if onChange != nil {
				onChange(page)
			}
		}
	}

	prev := button(doc, navClass, `<i class="ph ph-caret-left"></i>`)
	prev.SetDisabled(w.PrevDisabled)
	prev.AddEventListener("click", change(w.Current-1))
	controls.AppendChild(prev)

	for _, it := range w.Items {
		if it.Kind == ItemEllipsis {
			dots := button(doc, dotsClass, `<i class="ph ph-dots-three-outline"></i>`)
			dots.SetDisabled(true)
			controls.AppendChild(dots)
			continue
		}
		cls := pageClass
		if it.Active {
			cls = activeClass
		}
		btn := button(doc, cls, "")
		btn.SetTextContent(strconv.Itoa(it.Page))
		btn.AddEventListener("click", change(it.Page))
		controls.AppendChild(btn)
	}

	next := button(doc, navClass, `<i class="ph ph-caret-right"></i>`)
	next.SetDisabled(w.NextDisabled)
	next.AddEventListener("click", change(w.Current+1))
	controls.AppendChild(next)

	wrapper.AppendChild(controls)
	target.AppendChild(wrapper)
	return nil
}

func button(doc dom.Document, class, inner string) dom.Element {
	btn := doc.CreateElement("button")
	btn.SetClassName(class)
	if inner != "" {
		btn.SetInnerHTML(inner)
	}
	return btn
}
