package pages

import (
	"context"
	"log/slog"

	"github.com/destinity/erp-ui/internal/domain/model"
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/table"
)

// DOM anchors of the list pages.
const (
	EmployeesTableID      = "tbodyRh"
	EmployeesPaginationID = "paginationRh"
	ProductsTableID       = "tbodyInventory"
	ProductsPaginationID  = "paginationInventory"
	SalesTableID          = "tbodySales"
	SalesPaginationID     = "paginationSales"
)

// Row action names. The handlers map passed to each list is keyed by these.
const (
	ActionViewUser      = "viewUser"
	ActionEditUser      = "editUser"
	ActionDeleteUser    = "deleteUser"
	ActionViewProduct   = "viewProduct"
	ActionEditProduct   = "editProduct"
	ActionDeleteProduct = "deleteProduct"
	ActionViewSale      = "viewSale"
	ActionDeleteSale    = "deleteSale"
)

// ActionNames lists every row action name.
func ActionNames() []string {
	return []string{
		ActionViewUser, ActionEditUser, ActionDeleteUser,
		ActionViewProduct, ActionEditProduct, ActionDeleteProduct,
		ActionViewSale, ActionDeleteSale,
	}
}

// ListConfig carries what every list page needs besides its fetch function.
type ListConfig struct {
	Doc      dom.Document
	Handlers table.Handlers
	PerPage  int
	Logger   *slog.Logger
}

// NewEmployees builds the human resources list.
func NewEmployees(cfg ListConfig, fetch func(context.Context) ([]model.Employee, error)) *List[model.Employee] {
	return &List[model.Employee]{
		Doc:          cfg.Doc,
		Fetch:        fetch,
		TableID:      EmployeesTableID,
		PaginationID: EmployeesPaginationID,
		Columns:      EmployeeColumns(),
		Actions: []table.Action{
			named(viewAction, ActionViewUser),
			named(editAction, ActionEditUser),
			named(deleteAction, ActionDeleteUser),
		},
		Handlers: cfg.Handlers,
		ID:       model.EmployeeID,
		PerPage:  cfg.PerPage,
		Name:     "empleados",
		Logger:   cfg.Logger,
	}
}

// NewProducts builds the inventory list.
func NewProducts(cfg ListConfig, fetch func(context.Context) ([]model.Product, error)) *List[model.Product] {
	return &List[model.Product]{
		Doc:          cfg.Doc,
		Fetch:        fetch,
		TableID:      ProductsTableID,
		PaginationID: ProductsPaginationID,
		Columns:      ProductColumns(),
		Actions: []table.Action{
			named(viewAction, ActionViewProduct),
			named(editAction, ActionEditProduct),
			named(deleteAction, ActionDeleteProduct),
		},
		Handlers: cfg.Handlers,
		ID:       model.ProductID,
		PerPage:  cfg.PerPage,
		Name:     "productos",
		Logger:   cfg.Logger,
	}
}

// NewSales builds the sales list.
func NewSales(cfg ListConfig, fetch func(context.Context) ([]model.Sale, error)) *List[model.Sale] {
	view := named(viewAction, ActionViewSale)
	view.Title = "Ver venta"
	return &List[model.Sale]{
		Doc:          cfg.Doc,
		Fetch:        fetch,
		TableID:      SalesTableID,
		PaginationID: SalesPaginationID,
		Columns:      SaleColumns(),
		Actions:      []table.Action{view, named(deleteAction, ActionDeleteSale)},
		Handlers:     cfg.Handlers,
		ID:           model.SaleID,
		PerPage:      cfg.PerPage,
		Name:         "ventas",
		Logger:       cfg.Logger,
	}
}
