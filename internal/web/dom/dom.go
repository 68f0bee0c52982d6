// Package dom defines the narrow document model the browser app renders into.
//
// Controllers and helpers depend only on these interfaces. The jsdom
// subpackage implements them over syscall/js for the wasm build; memdom
// implements them in memory for tests and server-side checks.
package dom

// Document is the root the app looks elements up in.
type Document interface {
	// GetElementByID returns nil when no element has the id.
	GetElementByID(id string) Element
	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) Element
	// Body returns the body element, or nil before the document is parsed.
	Body() Element
	// AddEventListener registers fn for events dispatched to, or bubbling up to, the document.
	AddEventListener(event string, fn func(Event))
	// OnReady runs fn once the document is parsed (DOMContentLoaded).
	// If that already happened, fn runs immediately.
	OnReady(fn func())
}

// Element is a single DOM element.
type Element interface {
	ID() string
	TagName() string

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	HasClass(name string) bool
	AddClass(names ...string)
	RemoveClass(names ...string)
	// ToggleClass flips name and reports whether it is present afterwards.
	ToggleClass(name string) bool
	SetClassName(className string)

	TextContent() string
	SetTextContent(text string)
	InnerHTML() string
	// SetInnerHTML replaces the children with parsed markup.
	SetInnerHTML(markup string)
	AppendChild(child Element)
	// QuerySelector returns the first descendant matching a simple selector
	// (tag, #id, .class, or combinations such as button.primary), or nil.
	QuerySelector(selector string) Element
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool

	Value() string
	SetValue(value string)
	SetDisabled(disabled bool)
	Disabled() bool
	Focus()

	AddEventListener(event string, fn func(Event))
}

// Event is a dispatched DOM event.
type Event interface {
	Type() string
	// Target returns the element the event was dispatched to, or nil for the document itself.
	Target() Element
	PreventDefault()
	StopPropagation()
}

// Navigator changes the browser location.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Navigate calls f(url).
func (f NavigatorFunc) Navigate(url string) { f(url) }

// Valid reports whether el is a usable element.
// Typed nils stored in the interface are treated as absent.
func Valid(el Element) bool {
	if el == nil {
		return false
	}
	if v, ok := el.(interface{ IsNil() bool }); ok {
		return !v.IsNil()
	}
	return true
}

// Same reports whether a and b refer to the same underlying element.
// Adapters that wrap elements in fresh values implement Same(Element) bool.
func Same(a, b Element) bool {
	if !Valid(a) || !Valid(b) {
		return false
	}
	if s, ok := a.(interface{ Same(Element) bool }); ok {
		return s.Same(b)
	}
	return a == b
}
