//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/destinity/erp-ui/internal/web/session"
)

// Location navigates by assigning window.location.href.
type Location struct{}

// Navigate implements dom.Navigator.
func (Location) Navigate(url string) {
	js.Global().Get("location").Set("href", url)
}

// Origin returns window.location.origin.
func Origin() string {
	return js.Global().Get("location").Get("origin").String()
}

// OnPageHide runs fn when the page is being unloaded or put in the back/forward cache.
func OnPageHide(fn func()) {
	var f js.Func
	f = js.FuncOf(func(js.Value, []js.Value) any {
		f.Release()
		fn()
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", f)
}

// SessionStorage adapts window.sessionStorage to session.Store.
type SessionStorage struct {
	v js.Value
}

var _ session.Store = SessionStorage{}

// NewSessionStorage returns the adapter for window.sessionStorage.
func NewSessionStorage() SessionStorage {
	return SessionStorage{v: js.Global().Get("sessionStorage")}
}

func (s SessionStorage) Get(key string) (string, bool) {
	v := s.v.Call("getItem", key)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (s SessionStorage) Set(key, value string) { s.v.Call("setItem", key, value) }
func (s SessionStorage) Remove(key string)     { s.v.Call("removeItem", key) }

// GlobalAction returns a row-action handler for a legacy global function.
// When window[name] is not a function, an "erp:action" CustomEvent with
// {name, id} is dispatched on the document instead.
func GlobalAction(name string) func(id string) {
	return func(id string) {
		fn := js.Global().Get(name)
		if fn.Type() == js.TypeFunction {
			fn.Invoke(id)
			return
		}
		detail := js.Global().Get("Object").New()
		detail.Set("name", name)
		detail.Set("id", id)
		init := js.Global().Get("Object").New()
		init.Set("detail", detail)
		ev := js.Global().Get("CustomEvent").New("erp:action", init)
		js.Global().Get("document").Call("dispatchEvent", ev)
	}
}

// GlobalActions builds a handler map for the given action names.
func GlobalActions(names ...string) map[string]func(id string) {
	out := make(map[string]func(id string), len(names))
	for _, name := range names {
		out[name] = GlobalAction(name)
	}
	return out
}
