package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	erpui "github.com/destinity/erp-ui"
)

// templateFS returns the template tree, from disk in dev mode.
func templateFS(isDev bool, logger *slog.Logger) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(erpui.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		logger.Warn("embedded templates unavailable; falling back to disk", slog.Any("error", err))
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticFS returns the static asset tree, from disk in dev mode.
func staticFS(isDev bool, logger *slog.Logger) fs.FS {
	if isDev {
		return os.DirFS(StaticPathFromRoot)
	}
	sub, err := fs.Sub(erpui.StaticFS, StaticPathFromRoot)
	if err != nil {
		logger.Warn("embedded static assets unavailable; falling back to disk", slog.Any("error", err))
		return os.DirFS(StaticPathFromRoot)
	}
	return sub
}

// staticHandler serves fsys below prefix. The wasm binary and its loader
// are rebuilt in place, so they are revalidated on every load; other assets
// are cached for a day.
func staticHandler(prefix string, fsys fs.FS) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, ".wasm"), strings.HasSuffix(r.URL.Path, ".js"):
			w.Header().Set("Cache-Control", "no-cache")
		default:
			w.Header().Set("Cache-Control", "public, max-age=86400")
		}
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		files.ServeHTTP(w, r)
	})
}
