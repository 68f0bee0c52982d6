package pages

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinity/erp-ui/internal/domain/model"
	apperrors "github.com/destinity/erp-ui/internal/errors"
	"github.com/destinity/erp-ui/internal/web/dom/memdom"
	"github.com/destinity/erp-ui/internal/web/table"
)

const listFixture = `<html><body data-page="human_resources">
<table><tbody id="tbodyRh"></tbody></table><div id="paginationRh"></div>
<table><tbody id="tbodyInventory"></tbody></table><div id="paginationInventory"></div>
<table><tbody id="tbodySales"></tbody></table><div id="paginationSales"></div>
</body></html>`

func employees(n int) []model.Employee {
	out := make([]model.Employee, n)
	for i := range out {
		out[i] = model.Employee{
			ID:         model.Text("u" + strconv.Itoa(i+1)),
			FirstName:  "Nombre" + strconv.Itoa(i+1),
			LastName:   "Apellido",
			Department: "Ventas",
			Role:       "Ventas",
			Status:     "Activo",
		}
	}
	return out
}

func rowsOf(doc *memdom.Document, id string) []*memdom.Element {
	return memdom.As(doc.GetElementByID(id)).Children()
}

func pagerButtons(doc *memdom.Document, id string) []*memdom.Element {
	return memdom.As(doc.GetElementByID(id)).Children()[0].Children()[1].Children()
}

func TestListLoadAndPaging(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	var viewed []string
	l := NewEmployees(ListConfig{
		Doc:      doc,
		Handlers: table.Handlers{ActionViewUser: func(id string) { viewed = append(viewed, id) }},
	}, func(context.Context) ([]model.Employee, error) { return employees(12), nil })

	require.NoError(t, l.Load(context.Background()))
	rows := rowsOf(doc, EmployeesTableID)
	require.Len(t, rows, 5)
	assert.Equal(t, "EMP-2025-001", rows[0].Children()[0].TextContent())
	assert.Equal(t, 1, l.State().CurrentPage)
	assert.Len(t, l.State().Items, 12)

	buttons := pagerButtons(doc, EmployeesPaginationID)
	require.Len(t, buttons, 5)
	doc.Click(buttons[2])

	rows = rowsOf(doc, EmployeesTableID)
	require.Len(t, rows, 5)
	assert.Equal(t, 2, l.State().CurrentPage)
	assert.Equal(t, "EMP-2025-001", rows[0].Children()[0].TextContent(), "codes are page-relative")
	assert.Contains(t, rows[0].Children()[1].TextContent(), "Nombre6 Apellido")

	doc.Click(pagerButtons(doc, EmployeesPaginationID)[4])
	assert.Equal(t, 3, l.State().CurrentPage)
	rows = rowsOf(doc, EmployeesTableID)
	require.Len(t, rows, 2)

	doc.Click(rows[1].Children()[6].QuerySelector("button"))
	assert.Equal(t, []string{"u12"}, viewed)
}

func TestListShowPageClamps(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	l := NewEmployees(ListConfig{Doc: doc, PerPage: 4}, func(context.Context) ([]model.Employee, error) {
		return employees(10), nil
	})
	require.NoError(t, l.Load(context.Background()))

	require.NoError(t, l.ShowPage(99))
	assert.Equal(t, 3, l.State().CurrentPage)
	assert.Len(t, rowsOf(doc, EmployeesTableID), 2)

	require.NoError(t, l.ShowPage(0))
	assert.Equal(t, 1, l.State().CurrentPage)
	assert.Equal(t, 4, l.State().PerPage)
}

func TestListFetchFailureRendersEmpty(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	l := NewSales(ListConfig{Doc: doc}, func(context.Context) ([]model.Sale, error) {
		return nil, apperrors.New(apperrors.ErrCodeBackend, "boom")
	})

	require.NoError(t, l.Load(context.Background()))
	assert.Empty(t, rowsOf(doc, SalesTableID))
	summary := memdom.As(doc.GetElementByID(SalesPaginationID)).Children()[0].Children()[0]
	assert.Equal(t, "Mostrando 0-0 de 0 registros", summary.TextContent())
}

func TestListCanceledFetchRendersNothing(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewProducts(ListConfig{Doc: doc}, func(ctx context.Context) ([]model.Product, error) {
		return nil, ctx.Err()
	})

	require.NoError(t, l.Load(ctx))
	assert.Empty(t, memdom.As(doc.GetElementByID(ProductsPaginationID)).Children())
}

func TestListMissingTarget(t *testing.T) {
	doc := memdom.MustParse(`<html><body></body></html>`)
	l := NewEmployees(ListConfig{Doc: doc}, func(context.Context) ([]model.Employee, error) { return nil, nil })
	err := l.Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTargetNotFound(err))
}

func TestEmployeeRowMarkup(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	emp := model.Employee{
		ID:         "7",
		FirstName:  "ana",
		LastName:   "<script>",
		Department: "",
		Role:       "RRHH",
		Status:     "Activo",
		CreatedAt:  model.Timestamp(`"2025-03-05"`),
	}
	l := NewEmployees(ListConfig{Doc: doc}, func(context.Context) ([]model.Employee, error) {
		return []model.Employee{emp}, nil
	})
	require.NoError(t, l.Load(context.Background()))

	cells := rowsOf(doc, EmployeesTableID)[0].Children()
	require.Len(t, cells, 7)
	cls, _ := cells[0].Attribute("class")
	assert.Equal(t, "p-4 font-medium text-purple-600", cls)
	assert.Equal(t,
		`<div class="w-10 h-10 rounded-full bg-blue-100 flex items-center justify-center"><span class="font-bold text-blue-800">A&lt;</span></div> ana &lt;script&gt;`,
		cells[1].InnerHTML())
	assert.Equal(t, "-", cells[2].TextContent())
	assert.Equal(t, "RRHH", cells[3].TextContent())
	assert.Equal(t, "05/03/2025", cells[4].TextContent())
	assert.Equal(t, " Activo", cells[5].QuerySelector("span").TextContent())

	titles := []string{}
	for _, b := range cells[6].QuerySelectorAll("button") {
		title, _ := b.Attribute("title")
		titles = append(titles, title)
	}
	assert.Equal(t, []string{"Ver perfil", "Editar", "Eliminar"}, titles)
}

func TestProductRowMarkup(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	l := NewProducts(ListConfig{Doc: doc}, func(context.Context) ([]model.Product, error) {
		return []model.Product{{ID: "p1", Name: "Cama doble", Stock: 7, Category: "Muebles", Status: "Activo", Description: "Cama & colchón"}}, nil
	})
	require.NoError(t, l.Load(context.Background()))

	cells := rowsOf(doc, ProductsTableID)[0].Children()
	require.Len(t, cells, 5)
	title, ok := cells[0].QuerySelector("div").Attribute("title")
	require.True(t, ok)
	assert.Equal(t, "Cama & colchón", title)
	assert.Equal(t, "Cama doble", cells[0].QuerySelector("span").TextContent())
	assert.Equal(t, "7", cells[1].QuerySelector("span").TextContent())
	assert.Equal(t, "Muebles", cells[2].TextContent())

	names := []string{}
	for _, b := range cells[4].QuerySelectorAll("button") {
		name, _ := b.Attribute("data-action")
		names = append(names, name)
	}
	assert.Equal(t, []string{ActionViewProduct, ActionEditProduct, ActionDeleteProduct}, names)
}

func TestSaleRowMarkup(t *testing.T) {
	doc := memdom.MustParse(listFixture)
	total := 1250.5
	var deleted []string
	l := NewSales(ListConfig{
		Doc:      doc,
		Handlers: table.Handlers{ActionDeleteSale: func(id string) { deleted = append(deleted, id) }},
	}, func(context.Context) ([]model.Sale, error) {
		return []model.Sale{
			{ID: "s1", Name: "Reserva", Payment: "Tarjeta", Total: &total, Status: "Pagado", Sale: model.Timestamp(`"2025-03-05"`)},
			{ID: "s2", Name: "Sin total"},
		}, nil
	})
	require.NoError(t, l.Load(context.Background()))

	rows := rowsOf(doc, SalesTableID)
	require.Len(t, rows, 2)
	cells := rows[0].Children()
	assert.Equal(t, "VTA-2025-001", cells[0].TextContent())
	assert.Equal(t, "Reserva", cells[1].TextContent())
	assert.Equal(t, "05/03/2025", cells[2].TextContent())
	assert.Equal(t, "$1250.5", cells[3].TextContent())
	cls, _ := cells[3].Attribute("class")
	assert.Equal(t, "p-4 font-medium", cls)
	assert.Equal(t, " Tarjeta", cells[4].QuerySelector("span").TextContent())

	second := rows[1].Children()
	assert.Equal(t, "VTA-2025-002", second[0].TextContent())
	assert.Equal(t, "-", second[2].TextContent())
	assert.Equal(t, "-", second[3].TextContent())

	buttons := second[6].QuerySelectorAll("button")
	require.Len(t, buttons, 2)
	viewTitle, _ := buttons[0].Attribute("title")
	assert.Equal(t, "Ver venta", viewTitle)
	doc.Click(buttons[1])
	assert.Equal(t, []string{"s2"}, deleted)
}

func TestActionNames(t *testing.T) {
	assert.Len(t, ActionNames(), 8)
	assert.NotContains(t, ActionNames(), "")
}
