// Package memdom is an in-memory implementation of the dom interfaces backed
// by golang.org/x/net/html node trees. Events bubble from the target up to
// the document the same way browsers dispatch them, which is enough to drive
// controllers end to end in tests.
package memdom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/destinity/erp-ui/internal/web/dom"
)

const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an in-memory dom.Document.
type Document struct {
	root         *html.Node
	listeners    map[*html.Node]map[string][]func(dom.Event)
	docListeners map[string][]func(dom.Event)
	ready        bool
	pending      []func()
	focused      *html.Node
}

var _ dom.Document = (*Document)(nil)

// New returns an empty, not yet ready document.
func New() *Document {
	d, err := Parse(emptyDocument)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse builds a document from full HTML markup. The document is not ready
// until Ready is called.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{
		root:         root,
		listeners:    make(map[*html.Node]map[string][]func(dom.Event)),
		docListeners: make(map[string][]func(dom.Event)),
	}, nil
}

// MustParse is Parse for fixtures; it panics on error.
func MustParse(markup string) *Document {
	d, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return d
}

// Ready marks the document parsed and runs the OnReady callbacks in registration order.
func (d *Document) Ready() {
	if d.ready {
		return
	}
	d.ready = true
	pending := d.pending
	d.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// OnReady implements dom.Document.
func (d *Document) OnReady(fn func()) {
	if d.ready {
		fn()
		return
	}
	d.pending = append(d.pending, fn)
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	n := findFirst(d.root, func(n *html.Node) bool {
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	n := findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// AddEventListener implements dom.Document.
func (d *Document) AddEventListener(event string, fn func(dom.Event)) {
	d.docListeners[event] = append(d.docListeners[event], fn)
}

// Focused returns the element that last received focus, or nil.
func (d *Document) Focused() *Element {
	if d.focused == nil {
		return nil
	}
	return d.wrap(d.focused)
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

// Dispatch sends an event of type typ to target and bubbles it up to the
// document. A nil target dispatches to the document only.
func (d *Document) Dispatch(target dom.Element, typ string) *Event {
	ev := &Event{typ: typ}
	el := unwrap(target)
	if el != nil {
		ev.target = el
		for n := el.n; n != nil && !ev.stopped; n = n.Parent {
			for _, fn := range d.listeners[n][typ] {
				fn(ev)
			}
		}
		if !attached(el.n, d.root) {
			return ev
		}
	}
	if !ev.stopped {
		for _, fn := range d.docListeners[typ] {
			fn(ev)
		}
	}
	return ev
}

// Click dispatches a click. Disabled controls do not receive clicks, as in browsers.
func (d *Document) Click(target dom.Element) *Event {
	if el := unwrap(target); el != nil && el.Disabled() {
		return &Event{typ: "click", target: el}
	}
	return d.Dispatch(target, "click")
}

// Submit dispatches a submit event to a form.
func (d *Document) Submit(form dom.Element) *Event {
	return d.Dispatch(form, "submit")
}

// Type sets an input's value and dispatches an input event.
func (d *Document) Type(input dom.Element, value string) *Event {
	input.SetValue(value)
	return d.Dispatch(input, "input")
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{n: n, doc: d}
}

func (d *Document) forget(n *html.Node) {
	walk(n, func(c *html.Node) {
		delete(d.listeners, c)
		if d.focused == c {
			d.focused = nil
		}
	})
}

// Event is a dispatched memdom event.
type Event struct {
	typ       string
	target    *Element
	prevented bool
	stopped   bool
}

var _ dom.Event = (*Event)(nil)

// Type implements dom.Event.
func (e *Event) Type() string { return e.typ }

// Target implements dom.Event.
func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

// PreventDefault implements dom.Event.
func (e *Event) PreventDefault() { e.prevented = true }

// StopPropagation implements dom.Event.
func (e *Event) StopPropagation() { e.stopped = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// PropagationStopped reports whether a listener called StopPropagation.
func (e *Event) PropagationStopped() bool { return e.stopped }

func unwrap(el dom.Element) *Element {
	if !dom.Valid(el) {
		return nil
	}
	m, ok := el.(*Element)
	if !ok {
		return nil
	}
	return m
}

func attached(n, root *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool, out []*html.Node) []*html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			out = append(out, c)
		}
		out = findAll(c, match, out)
	}
	return out
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
