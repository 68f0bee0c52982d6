package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/destinity/erp-ui/config"
	httpx "github.com/destinity/erp-ui/internal/http"
	"github.com/destinity/erp-ui/internal/ports"
)

const shutdownTimeout = 10 * time.Second

// ServerConfig contains the dependencies of the UI HTTP server.
type ServerConfig struct {
	Config      *config.AppConfig
	Revocations ports.RevocationStore // optional
	Metrics     *httpx.Metrics        // optional
	Logger      *slog.Logger

	// Listener overrides Config.HTTP.Addr, for tests.
	Listener net.Listener
}

// BuildHandler builds the router wrapped in the middleware chain.
// Order: Recover -> RequestID -> Logging -> Metrics -> Compression -> Router.
func BuildHandler(cfg ServerConfig) (http.Handler, error) {
	if cfg.Config == nil {
		return nil, errors.New("server config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app := cfg.Config

	metricsPath := ""
	if cfg.Metrics != nil && app.Metrics.Enabled {
		metricsPath = app.Metrics.Path
	}

	router, err := httpx.NewRouter(httpx.RouterConfig{
		BasePath:       app.HTTP.BasePath,
		ItemsPerPage:   app.UI.ItemsPerPage,
		IsDev:          app.IsDev,
		Backend:        app.Backend.Parsed(),
		BackendTimeout: app.Backend.Timeout,
		Revocations:    cfg.Revocations,
		Metrics:        cfg.Metrics,
		MetricsPath:    metricsPath,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	h := router
	if app.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", app.HTTP.CompressionLevel)
		h = httpx.Compression(httpx.CompressionConfig{Level: app.HTTP.CompressionLevel, Logger: logger})(h)
	}
	h = cfg.Metrics.Middleware()(h)
	h = httpx.Logging(logger)(h)
	h = httpx.RequestID()(h)
	h = httpx.Recover(logger)(h)
	return h, nil
}

// RunServer serves until ctx is cancelled, then shuts down gracefully.
// It returns the first serve or shutdown error.
func RunServer(ctx context.Context, cfg ServerConfig) error {
	handler, err := BuildHandler(cfg)
	if err != nil {
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Proxied backend calls are bounded by the proxy timeout.
		WriteTimeout: cfg.Config.Backend.Timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var serveErr error
		if cfg.Listener != nil {
			logger.Info("starting HTTP server", "addr", cfg.Listener.Addr().String(), "base_path", cfg.Config.HTTP.BasePath)
			serveErr = server.Serve(cfg.Listener)
		} else {
			logger.Info("starting HTTP server", "addr", server.Addr, "base_path", cfg.Config.HTTP.BasePath)
			serveErr = server.ListenAndServe()
		}
		if errors.Is(serveErr, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", serveErr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})
	return g.Wait()
}
