//go:build js && wasm

package jsdom

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/destinity/erp-ui/internal/web/dom"
)

// listenerAttr marks elements holding Go callbacks so they can be released
// when their subtree is replaced.
const listenerAttr = "data-go-listener"

// Document wraps window.document.
type Document struct {
	v   js.Value
	reg *registry
}

var _ dom.Document = (*Document)(nil)

// NewDocument returns the adapter for the global document.
func NewDocument() *Document {
	return &Document{
		v:   js.Global().Get("document"),
		reg: &registry{funcs: make(map[int][]js.Func)},
	}
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	return d.wrap(d.v.Call("getElementById", id))
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return d.wrap(d.v.Call("createElement", tag))
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	return d.wrap(d.v.Get("body"))
}

// AddEventListener implements dom.Document. Document listeners live as long as the page.
func (d *Document) AddEventListener(event string, fn func(dom.Event)) {
	d.v.Call("addEventListener", event, d.eventFunc(fn))
}

// OnReady implements dom.Document.
func (d *Document) OnReady(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var f js.Func
	f = js.FuncOf(func(js.Value, []js.Value) any {
		f.Release()
		fn()
		return nil
	})
	d.v.Call("addEventListener", "DOMContentLoaded", f)
}

func (d *Document) wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v, doc: d}
}

func (d *Document) eventFunc(fn func(dom.Event)) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		fn(&Event{v: args[0], doc: d})
		return nil
	})
}

// registry tracks element callbacks by the marker attribute value.
type registry struct {
	next  int
	funcs map[int][]js.Func
}

func (r *registry) add(el js.Value, f js.Func) {
	key := 0
	if attr := el.Call("getAttribute", listenerAttr); !attr.IsNull() {
		key, _ = strconv.Atoi(attr.String())
	}
	if key == 0 {
		r.next++
		key = r.next
		el.Call("setAttribute", listenerAttr, strconv.Itoa(key))
	}
	r.funcs[key] = append(r.funcs[key], f)
}

// releaseWithin releases callbacks of every marked descendant of el.
func (r *registry) releaseWithin(el js.Value) {
	nodes := el.Call("querySelectorAll", "["+listenerAttr+"]")
	for i := 0; i < nodes.Length(); i++ {
		key, err := strconv.Atoi(nodes.Index(i).Call("getAttribute", listenerAttr).String())
		if err != nil {
			continue
		}
		for _, f := range r.funcs[key] {
			f.Release()
		}
		delete(r.funcs, key)
	}
}

// Element wraps a DOM element value.
type Element struct {
	v   js.Value
	doc *Document
}

var _ dom.Element = (*Element)(nil)

// IsNil reports whether the receiver is a typed nil.
func (e *Element) IsNil() bool { return e == nil || e.v.IsNull() || e.v.IsUndefined() }

// Same reports whether e and other wrap the same node.
func (e *Element) Same(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && !e.IsNil() && !o.IsNil() && e.v.Equal(o.v)
}

func (e *Element) ID() string      { return e.v.Get("id").String() }
func (e *Element) TagName() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *Element) Attribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *Element) RemoveAttribute(name string)     { e.v.Call("removeAttribute", name) }

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(names ...string) {
	e.v.Get("classList").Call("add", toAny(names)...)
}

func (e *Element) RemoveClass(names ...string) {
	e.v.Get("classList").Call("remove", toAny(names)...)
}

func (e *Element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *Element) SetClassName(className string) { e.v.Set("className", className) }

func (e *Element) TextContent() string { return e.v.Get("textContent").String() }

func (e *Element) SetTextContent(text string) {
	e.doc.reg.releaseWithin(e.v)
	e.v.Set("textContent", text)
}

func (e *Element) InnerHTML() string { return e.v.Get("innerHTML").String() }

func (e *Element) SetInnerHTML(markup string) {
	e.doc.reg.releaseWithin(e.v)
	e.v.Set("innerHTML", markup)
}

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c.IsNil() {
		return
	}
	e.v.Call("appendChild", c.v)
}

func (e *Element) QuerySelector(selector string) dom.Element {
	return e.doc.wrap(e.v.Call("querySelector", selector))
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o.IsNil() {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

func (e *Element) Value() string {
	v := e.v.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetValue(value string)     { e.v.Set("value", value) }
func (e *Element) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }
func (e *Element) Disabled() bool            { return e.v.Get("disabled").Truthy() }
func (e *Element) Focus()                    { e.v.Call("focus") }

func (e *Element) AddEventListener(event string, fn func(dom.Event)) {
	f := e.doc.eventFunc(fn)
	e.doc.reg.add(e.v, f)
	e.v.Call("addEventListener", event, f)
}

// Event wraps a DOM event value.
type Event struct {
	v   js.Value
	doc *Document
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.v.Get("type").String() }

func (e *Event) Target() dom.Element {
	t := e.v.Get("target")
	if t.IsNull() || t.IsUndefined() || t.Get("nodeType").Int() != 1 {
		return nil
	}
	return e.doc.wrap(t)
}

func (e *Event) PreventDefault()  { e.v.Call("preventDefault") }
func (e *Event) StopPropagation() { e.v.Call("stopPropagation") }

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
