package bootstrap

import (
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinity/erp-ui/config"
	httpx "github.com/destinity/erp-ui/internal/http"
)

func testAppConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	cfg := &config.AppConfig{
		HTTP:    config.HTTPConfig{BasePath: "/destinity-erp", CompressionEnabled: true, CompressionLevel: 5},
		Backend: config.BackendConfig{URL: backend.URL, Timeout: time.Second},
		UI:      config.UIConfig{ItemsPerPage: 5},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.Sanitize()
	return cfg
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestBuildHandlerRequiresConfig(t *testing.T) {
	_, err := BuildHandler(ServerConfig{})
	assert.Error(t, err)
}

func TestBuildHandlerChain(t *testing.T) {
	h, err := BuildHandler(ServerConfig{Config: testAppConfig(t), Metrics: httpx.NewMetrics(), Logger: discardLogger()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/destinity-erp/pages/home", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(httpx.HeaderRequestID))
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `data-page="home"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "erp_ui_http_requests_total")
}

func TestBuildHandlerWithoutMetrics(t *testing.T) {
	h, err := BuildHandler(ServerConfig{Config: testAppConfig(t), Logger: discardLogger()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunServerStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunServer(ctx, ServerConfig{Config: testAppConfig(t), Logger: discardLogger(), Listener: ln})
	}()

	url := "http://" + ln.Addr().String() + httpx.HealthPath
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test helper
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}
