package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/ports"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

// RouterConfig holds everything the HTTP router needs.
type RouterConfig struct {
	BasePath     string
	ItemsPerPage int
	IsDev        bool // Serve templates and static files from disk

	Backend          *url.URL
	BackendTimeout   time.Duration
	BackendTransport http.RoundTripper // optional, for tests

	// Revocations is optional; without it logout is accepted but not recorded.
	Revocations ports.RevocationStore

	// Metrics is optional; MetricsPath is only mounted when it is set.
	Metrics     *Metrics
	MetricsPath string

	// TemplateFS and StaticFS override the embedded or on-disk trees.
	TemplateFS fs.FS
	StaticFS   fs.FS

	Logger *slog.Logger
}

// NewRouter creates the UI server router. Everything except health and
// metrics lives under BasePath.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Backend == nil {
		return nil, errors.New("backend URL is required")
	}
	base := cfg.BasePath

	tfs := cfg.TemplateFS
	if tfs == nil {
		tfs = templateFS(cfg.IsDev, logger)
	}
	sfs := cfg.StaticFS
	if sfs == nil {
		sfs = staticFS(cfg.IsDev, logger)
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: tfs, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}
	pageHandlers := &PageHandlers{T: tr, BasePath: base, ItemsPerPage: cfg.ItemsPerPage, Logger: logger}

	proxy, err := NewAPIProxy(ProxyConfig{
		Target:      cfg.Backend,
		BasePath:    base,
		Revocations: cfg.Revocations,
		Timeout:     cfg.BackendTimeout,
		Transport:   cfg.BackendTransport,
		Metrics:     cfg.Metrics,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api proxy: %w", err)
	}

	mux := http.NewServeMux()
	registerPageRoutes(mux, base, pageHandlers)
	mux.Handle(base+StaticPrefix, staticHandler(base+StaticPrefix, sfs))
	mux.Handle(base+APIPrefix, proxy)
	mux.Handle("POST "+base+LogoutPath, &LogoutHandler{
		Revocations: cfg.Revocations,
		Metrics:     cfg.Metrics,
		Logger:      logger,
	})
	mux.HandleFunc("GET "+HealthPath, healthHandler)
	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		mux.Handle("GET "+cfg.MetricsPath, cfg.Metrics.Handler())
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: string(apperrors.ErrCodeNotFound), Err: errors.New("no such endpoint")})
			return
		}
		pageHandlers.NotFound(w, r)
	})
	return mux, nil
}

func registerPageRoutes(mux *http.ServeMux, base string, h *PageHandlers) {
	for _, spec := range PageSpecs() {
		if spec.Page == auth.PageLogin {
			mux.HandleFunc("GET "+base+"/{$}", h.Page(spec))
			continue
		}
		mux.HandleFunc("GET "+base+spec.Page.Path(), h.Page(spec))
	}
	if base != "" {
		mux.Handle("GET "+base, http.RedirectHandler(base+"/", http.StatusMovedPermanently))
	}
}
