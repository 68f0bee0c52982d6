package memdom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/destinity/erp-ui/internal/web/dom"
)

// Element is an in-memory dom.Element. Two Elements wrapping the same node
// are equivalent; compare them with Same.
type Element struct {
	n   *html.Node
	doc *Document
}

var _ dom.Element = (*Element)(nil)

// As returns el as a memdom element, or nil when it belongs to another adapter.
func As(el dom.Element) *Element { return unwrap(el) }

// IsNil reports whether the receiver is a typed nil.
func (e *Element) IsNil() bool { return e == nil || e.n == nil }

// Same reports whether e and other wrap the same node.
func (e *Element) Same(other dom.Element) bool {
	o := unwrap(other)
	return o != nil && !e.IsNil() && o.n == e.n
}

// ID implements dom.Element.
func (e *Element) ID() string {
	v, _ := getAttr(e.n, "id")
	return v
}

// TagName implements dom.Element. Tags are lower case.
func (e *Element) TagName() string { return e.n.Data }

// Attribute implements dom.Element.
func (e *Element) Attribute(name string) (string, bool) { return getAttr(e.n, name) }

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(name string) {
	attrs := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.n.Attr = attrs
}

func (e *Element) classes() []string {
	v, _ := getAttr(e.n, "class")
	return strings.Fields(v)
}

func (e *Element) setClasses(list []string) {
	e.SetAttribute("class", strings.Join(list, " "))
}

// HasClass implements dom.Element.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass implements dom.Element.
func (e *Element) AddClass(names ...string) {
	list := e.classes()
	for _, name := range names {
		if !contains(list, name) {
			list = append(list, name)
		}
	}
	e.setClasses(list)
}

// RemoveClass implements dom.Element.
func (e *Element) RemoveClass(names ...string) {
	list := e.classes()
	out := list[:0]
	for _, c := range list {
		if !contains(names, c) {
			out = append(out, c)
		}
	}
	e.setClasses(out)
}

// ToggleClass implements dom.Element.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// SetClassName implements dom.Element.
func (e *Element) SetClassName(className string) {
	e.SetAttribute("class", className)
}

// TextContent implements dom.Element.
func (e *Element) TextContent() string {
	var b strings.Builder
	walk(e.n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// SetTextContent implements dom.Element.
func (e *Element) SetTextContent(text string) {
	e.clear()
	if text != "" {
		e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// InnerHTML implements dom.Element.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

// OuterHTML renders the element itself.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.n); err != nil {
		return ""
	}
	return buf.String()
}

// SetInnerHTML implements dom.Element. Markup is parsed in the context of
// this element, so "<td>" inside a "tr" behaves as it does in a browser.
func (e *Element) SetInnerHTML(markup string) {
	e.clear()
	if markup == "" {
		return
	}
	ctx := e.n
	if ctx.DataAtom == 0 {
		// Unknown tags parse like a div.
		ctx = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		e.n.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
}

func (e *Element) clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		e.doc.forget(c)
		c = next
	}
}

// AppendChild implements dom.Element.
func (e *Element) AppendChild(child dom.Element) {
	c := unwrap(child)
	if c == nil {
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	e.n.AppendChild(c.n)
}

// QuerySelector implements dom.Element.
func (e *Element) QuerySelector(selector string) dom.Element {
	match, ok := compileSelector(selector)
	if !ok {
		return nil
	}
	n := findFirst(e.n, match)
	if n == nil {
		return nil
	}
	return e.doc.wrap(n)
}

// QuerySelectorAll returns every descendant matching selector in document order.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	match, ok := compileSelector(selector)
	if !ok {
		return nil
	}
	nodes := findAll(e.n, match, nil)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, e.doc.wrap(n))
	}
	return out
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// Contains implements dom.Element.
func (e *Element) Contains(other dom.Element) bool {
	o := unwrap(other)
	if o == nil {
		return false
	}
	for n := o.n; n != nil; n = n.Parent {
		if n == e.n {
			return true
		}
	}
	return false
}

// Value implements dom.Element.
func (e *Element) Value() string {
	if e.n.DataAtom == atom.Textarea {
		return e.TextContent()
	}
	v, _ := getAttr(e.n, "value")
	return v
}

// SetValue implements dom.Element.
func (e *Element) SetValue(value string) {
	if e.n.DataAtom == atom.Textarea {
		e.SetTextContent(value)
		return
	}
	e.SetAttribute("value", value)
}

// SetDisabled implements dom.Element.
func (e *Element) SetDisabled(disabled bool) {
	if disabled {
		e.SetAttribute("disabled", "")
		return
	}
	e.RemoveAttribute("disabled")
}

// Disabled implements dom.Element.
func (e *Element) Disabled() bool {
	_, ok := getAttr(e.n, "disabled")
	return ok
}

// Focus implements dom.Element.
func (e *Element) Focus() { e.doc.focused = e.n }

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, fn func(dom.Event)) {
	byType := e.doc.listeners[e.n]
	if byType == nil {
		byType = make(map[string][]func(dom.Event))
		e.doc.listeners[e.n] = byType
	}
	byType[event] = append(byType[event], fn)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
