package httpx

import (
	"log/slog"
	"net/http"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/http/ui/viewmodel"
	"github.com/destinity/erp-ui/internal/web/pages"
)

// PageSpec describes one server-rendered page.
type PageSpec struct {
	Page  auth.Page
	Title string
	List  *viewmodel.List
}

const emptyListText = "Cargando registros..."

// PageSpecs lists every page in route order, login first.
func PageSpecs() []PageSpec {
	return []PageSpec{
		{Page: auth.PageLogin, Title: "Iniciar sesión"},
		{Page: auth.PageHome, Title: "Inicio"},
		{Page: auth.PageAnalytics, Title: "Analíticas"},
		{Page: auth.PageInventory, Title: "Inventario", List: &viewmodel.List{
			TableID:      pages.ProductsTableID,
			PaginationID: pages.ProductsPaginationID,
			Headers:      []string{"Producto", "Stock", "Categoría", "Estado", "Acciones"},
			EmptyText:    emptyListText,
		}},
		{Page: auth.PagePurchases, Title: "Compras"},
		{Page: auth.PageSales, Title: "Ventas", List: &viewmodel.List{
			TableID:      pages.SalesTableID,
			PaginationID: pages.SalesPaginationID,
			Headers:      []string{"Código", "Cliente", "Fecha", "Total", "Pago", "Estado", "Acciones"},
			EmptyText:    emptyListText,
		}},
		{Page: auth.PageFinances, Title: "Finanzas"},
		{Page: auth.PageHumanResources, Title: "Recursos Humanos", List: &viewmodel.List{
			TableID:      pages.EmployeesTableID,
			PaginationID: pages.EmployeesPaginationID,
			Headers:      []string{"Código", "Empleado", "Departamento", "Rol", "Ingreso", "Estado", "Acciones"},
			EmptyText:    emptyListText,
		}},
	}
}

// notFoundPage is the data-page of the 404 page; the browser app boots chrome only.
const notFoundPage = "not_found"

// ContentTemplateFor returns the content template for the given page.
// Pages without a dedicated template share the dashboard.
func ContentTemplateFor(page string) string {
	switch page {
	case string(auth.PageLogin):
		return "login-content"
	case string(auth.PageInventory), string(auth.PageSales), string(auth.PageHumanResources):
		return "list-content"
	case notFoundPage:
		return "notfound-content"
	default:
		return "dashboard-content"
	}
}

// PageHandlers renders the UI pages.
type PageHandlers struct {
	T            *TemplateRenderer
	BasePath     string
	ItemsPerPage int
	Logger       *slog.Logger
}

func (h *PageHandlers) layout(r *http.Request, page, title string) viewmodel.Layout {
	return viewmodel.Layout{
		Title:        title + " | Destinity ERP",
		PageTitle:    title,
		CurrentPage:  page,
		BasePath:     h.BasePath,
		ItemsPerPage: h.ItemsPerPage,
		ShowChrome:   page != string(auth.PageLogin),
		RequestID:    RequestIDFrom(r.Context()),
	}
}

// Page returns the handler for spec.
func (h *PageHandlers) Page(spec PageSpec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := &viewmodel.Page{
			Layout: h.layout(r, string(spec.Page), spec.Title),
			List:   spec.List,
		}
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.renderError(w, r, err)
		}
	}
}

// NotFound renders the 404 page inside the chrome.
func (h *PageHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := &viewmodel.Page{Layout: h.layout(r, notFoundPage, "Página no encontrada")}
	if err := h.T.RenderStatus(w, http.StatusNotFound, data); err != nil {
		h.renderError(w, r, err)
	}
}

func (h *PageHandlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(r.Context(), "page render failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFrom(r.Context())),
		slog.Any("error", err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
