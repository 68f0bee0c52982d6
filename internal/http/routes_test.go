package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/dom/memdom"
	"github.com/destinity/erp-ui/internal/web/pages"
)

const testBase = "/destinity-erp"

func newTestRouter(t *testing.T, metrics *Metrics) http.Handler {
	t.Helper()
	calls := make(chan backendCall, 8)
	h, err := NewRouter(RouterConfig{
		BasePath:     testBase,
		ItemsPerPage: 7,
		Backend:      newBackend(t, calls),
		Metrics:      metrics,
		MetricsPath:  "/metrics",
		StaticFS: fstest.MapFS{
			"js/erp.wasm": {Data: []byte("\x00asm")},
			"js/boot.js":  {Data: []byte("// boot")},
			"css/app.css": {Data: []byte(".hidden{display:none}")},
		},
	})
	require.NoError(t, err)
	return RequestID()(metrics.Middleware()(h))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func parsePage(t *testing.T, rec *httptest.ResponseRecorder) *memdom.Document {
	t.Helper()
	doc, err := memdom.Parse(rec.Body.String())
	require.NoError(t, err)
	return doc
}

func bodyAttr(t *testing.T, doc *memdom.Document, name string) string {
	t.Helper()
	v, ok := doc.Body().Attribute(name)
	require.True(t, ok, "body is missing %s", name)
	return v
}

func TestNewRouterRequiresBackend(t *testing.T) {
	_, err := NewRouter(RouterConfig{BasePath: testBase})
	assert.Error(t, err)
}

func TestRouterLoginPage(t *testing.T) {
	rec := get(t, newTestRouter(t, nil), testBase+"/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc := parsePage(t, rec)
	assert.Equal(t, "login", bodyAttr(t, doc, "data-page"))
	assert.Equal(t, testBase, bodyAttr(t, doc, "data-base-path"))
	assert.Equal(t, "7", bodyAttr(t, doc, "data-items-per-page"))
	assert.NotEmpty(t, bodyAttr(t, doc, "data-request-id"))

	for _, id := range []string{
		pages.LoginFormID, pages.EmailID, pages.PasswordID, pages.EmailErrorID,
		pages.PasswordErrorID, pages.GeneralErrorID, pages.LoginButtonID, pages.SpinnerID,
	} {
		assert.True(t, dom.Valid(doc.GetElementByID(id)), "missing #%s", id)
	}
	assert.False(t, dom.Valid(doc.GetElementByID("nav-links")), "login renders without chrome")
}

func TestRouterListPages(t *testing.T) {
	h := newTestRouter(t, nil)
	tests := []struct {
		path, page, table, pager string
	}{
		{"/pages/human_resources", "human_resources", pages.EmployeesTableID, pages.EmployeesPaginationID},
		{"/pages/inventory", "inventory", pages.ProductsTableID, pages.ProductsPaginationID},
		{"/pages/sales", "sales", pages.SalesTableID, pages.SalesPaginationID},
	}
	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			rec := get(t, h, testBase+tt.path)
			require.Equal(t, http.StatusOK, rec.Code)

			doc := parsePage(t, rec)
			assert.Equal(t, tt.page, bodyAttr(t, doc, "data-page"))
			assert.True(t, dom.Valid(doc.GetElementByID(tt.table)))
			assert.True(t, dom.Valid(doc.GetElementByID(tt.pager)))
			for _, id := range []string{"nav-links", "profile-button", "profile-menu", "mobile-menu-button", "mobile-menu"} {
				assert.True(t, dom.Valid(doc.GetElementByID(id)), "missing #%s", id)
			}
			menu := doc.GetElementByID("profile-menu")
			assert.True(t, dom.Valid(menu.QuerySelector(".profile-logout")))
			assert.True(t, menu.HasClass("pointer-events-none"))
		})
	}
}

func TestRouterDashboardPages(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, p := range []string{"home", "analytics", "purchases", "finances"} {
		rec := get(t, h, testBase+"/pages/"+p)
		require.Equal(t, http.StatusOK, rec.Code, p)
		assert.Equal(t, p, bodyAttr(t, parsePage(t, rec), "data-page"))
	}
}

func TestRouterBaseRedirect(t *testing.T) {
	rec := get(t, newTestRouter(t, nil), testBase)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, testBase+"/", rec.Header().Get("Location"))
}

func TestRouterNotFound(t *testing.T) {
	h := newTestRouter(t, nil)

	t.Run("page", func(t *testing.T) {
		rec := get(t, h, testBase+"/pages/reports")
		require.Equal(t, http.StatusNotFound, rec.Code)
		doc := parsePage(t, rec)
		assert.Equal(t, notFoundPage, bodyAttr(t, doc, "data-page"))
		assert.True(t, dom.Valid(doc.GetElementByID("nav-links")))
	})

	t.Run("non-GET is JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/anything", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decodeError(t, rec)["error"])
	})
}

func TestRouterStatic(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := get(t, h, testBase+"/static/js/erp.wasm")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	rec = get(t, h, testBase+"/static/css/app.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusNotFound, get(t, h, testBase+"/static/js/").Code)
}

func TestRouterAPIProxy(t *testing.T) {
	rec := get(t, newTestRouter(t, nil), testBase+"/api/users/all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"1"`)
}

func TestRouterHealthAndLogout(t *testing.T) {
	h := newTestRouter(t, nil)
	assert.Equal(t, http.StatusOK, get(t, h, HealthPath).Code)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, testBase+LogoutPath, nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouterMetrics(t *testing.T) {
	h := newTestRouter(t, NewMetrics())
	require.Equal(t, http.StatusOK, get(t, h, testBase+"/pages/sales").Code)

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body),
		`erp_ui_http_requests_total{method="GET",route="GET /destinity-erp/pages/sales",status_code="200"} 1`),
		"metrics output:\n%s", body)
}
