package memdom

import (
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// selectors caches compiled CSS selectors; the UI queries the same few
// strings on every render.
var selectors sync.Map // string -> cascadia.Selector

// compileSelector returns the matcher for sel, or false when sel is blank
// or not valid CSS.
func compileSelector(sel string) (func(*html.Node) bool, bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil, false
	}
	if cached, ok := selectors.Load(sel); ok {
		return cached.(cascadia.Selector).Match, true
	}
	compiled, err := cascadia.Compile(sel)
	if err != nil {
		return nil, false
	}
	selectors.Store(sel, compiled)
	return compiled.Match, true
}
