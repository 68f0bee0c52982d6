package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/destinity/erp-ui/internal/mocks"
	mockauth "github.com/destinity/erp-ui/internal/mocks/auth"
)

type backendCall struct {
	Path      string
	Auth      string
	RequestID string
	Forwarded string
}

func newBackend(t *testing.T, calls chan<- backendCall) *url.URL {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls <- backendCall{
			Path:      r.URL.Path,
			Auth:      r.Header.Get("Authorization"),
			RequestID: r.Header.Get(HeaderRequestID),
			Forwarded: r.Header.Get("X-Forwarded-Host"),
		}
		WriteJSON(w, http.StatusOK, []map[string]string{{"id": "1"}})
	}))
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return u
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAPIProxyForwardsWithoutBasePath(t *testing.T) {
	calls := make(chan backendCall, 1)
	target := newBackend(t, calls)
	proxy, err := NewAPIProxy(ProxyConfig{Target: target, BasePath: "/destinity-erp", Metrics: NewMetrics()})
	require.NoError(t, err)

	h := RequestID()(proxy)
	req := httptest.NewRequest(http.MethodGet, "/destinity-erp/api/users/all", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := <-calls
	assert.Equal(t, "/api/users/all", got.Path)
	assert.Equal(t, "Bearer abc", got.Auth)
	assert.Equal(t, rec.Header().Get(HeaderRequestID), got.RequestID)
	assert.Equal(t, "example.com", got.Forwarded)
	assert.JSONEq(t, `[{"id":"1"}]`, rec.Body.String())
}

func TestAPIProxyRejectsRevokedTokens(t *testing.T) {
	calls := make(chan backendCall, 1)
	target := newBackend(t, calls)
	store := mockauth.NewMemoryRevocationStore()
	require.NoError(t, store.Revoke(t.Context(), "revoked-token", time.Now().Add(time.Hour)))

	proxy, err := NewAPIProxy(ProxyConfig{Target: target, Revocations: store})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/all", nil)
	req.Header.Set("Authorization", "Bearer revoked-token")
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token_revoked", decodeError(t, rec)["error"])
	assert.Empty(t, calls, "revoked requests must not reach the backend")

	req = httptest.NewRequest(http.MethodGet, "/api/sales/all", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	rec = httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/sales/all", (<-calls).Path)
}

func TestAPIProxyForwardsWhenRevocationStoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRevocationStore(ctrl)
	store.EXPECT().IsRevoked(gomock.Any(), "tok").Return(false, errors.New("redis down"))

	calls := make(chan backendCall, 1)
	proxy, err := NewAPIProxy(ProxyConfig{Target: newBackend(t, calls), Revocations: store})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/products/all", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, calls, 1)
}

func TestAPIProxyWithoutBearerSkipsRevocationCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRevocationStore(ctrl)

	calls := make(chan backendCall, 1)
	proxy, err := NewAPIProxy(ProxyConfig{Target: newBackend(t, calls), Revocations: store})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIProxyBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	srv.Close()

	proxy, err := NewAPIProxy(ProxyConfig{Target: target})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/all", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "backend_unavailable", decodeError(t, rec)["error"])
}

func TestAPIProxyTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	proxy, err := NewAPIProxy(ProxyConfig{Target: target, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/all", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "backend_timeout", decodeError(t, rec)["error"])
}

func TestNewAPIProxyRequiresAbsoluteTarget(t *testing.T) {
	_, err := NewAPIProxy(ProxyConfig{})
	assert.Error(t, err)
	_, err = NewAPIProxy(ProxyConfig{Target: &url.URL{Path: "/api"}})
	assert.Error(t, err)
}

func TestStripBase(t *testing.T) {
	cases := []struct{ path, base, want string }{
		{"/destinity-erp/api/users/all", "/destinity-erp", "/api/users/all"},
		{"/api/users/all", "", "/api/users/all"},
		{"/destinity-erp", "/destinity-erp", "/"},
		{"/destinity-erpx/api", "/destinity-erp", "/destinity-erpx/api"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stripBase(c.path, c.base), c.path)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"Bearer abc":      "abc",
		"bearer  abc ":    "abc",
		"Basic dXNlcjpw":  "",
		"Bearer":          "",
		"Token something": "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, BearerToken(req), header)
	}
}

func TestProxyMetricsRecorded(t *testing.T) {
	calls := make(chan backendCall, 1)
	m := NewMetrics()
	proxy, err := NewAPIProxy(ProxyConfig{Target: newBackend(t, calls), Metrics: m})
	require.NoError(t, err)
	proxy.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users/all", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `erp_ui_backend_requests_total{method="GET",outcome="2xx"} 1`)
}
