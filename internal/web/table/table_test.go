package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/destinity/erp-ui/internal/errors"
	"github.com/destinity/erp-ui/internal/web/dom/memdom"
)

type row struct {
	ID   string
	Name string
}

var twoColumns = []Column[row]{
	{Class: "p-4 font-medium", Content: func(r row, i int) string { return strconv.Itoa(i + 1) }},
	{Content: func(r row, _ int) string { return "<b>" + r.Name + "</b>" }},
}

func fixture() *memdom.Document {
	return memdom.MustParse(`<html><body><table><tbody id="rows"><tr><td>old</td></tr></tbody></table></body></html>`)
}

func TestRenderRows(t *testing.T) {
	doc := fixture()
	records := []row{{"a", "Ana"}, {"b", "Beto"}, {"c", "Caro"}}

	require.NoError(t, Render(doc, "rows", records, twoColumns, Options[row]{}))

	rows := memdom.As(doc.GetElementByID("rows")).Children()
	require.Len(t, rows, 3)
	for i, tr := range rows {
		cls, _ := tr.Attribute("class")
		assert.Equal(t, RowClass, cls)

		cells := tr.Children()
		require.Len(t, cells, 2)
		assert.Equal(t, strconv.Itoa(i+1), cells[0].TextContent())
		c0, _ := cells[0].Attribute("class")
		c1, _ := cells[1].Attribute("class")
		assert.Equal(t, "p-4 font-medium", c0)
		assert.Equal(t, DefaultCellClass, c1)
		assert.Equal(t, "<b>"+records[i].Name+"</b>", cells[1].InnerHTML())
	}
}

func TestRenderEmptyClearsTarget(t *testing.T) {
	doc := fixture()
	require.NoError(t, Render(doc, "rows", nil, twoColumns, Options[row]{}))
	assert.Empty(t, memdom.As(doc.GetElementByID("rows")).Children())
}

func TestRenderMissingTarget(t *testing.T) {
	err := Render(fixture(), "nope", []row{{"a", "Ana"}}, twoColumns, Options[row]{})
	require.Error(t, err)
	assert.True(t, apperrors.IsTargetNotFound(err))
	assert.Equal(t, "nope", apperrors.GetField(err))
}

func TestRenderActions(t *testing.T) {
	doc := fixture()
	var viewed, deleted []string
	opts := Options[row]{
		Actions: []Action{
			{Icon: "ph-eye", Color: "text-blue-600 bg-blue-100", Title: "Ver perfil", Name: "view"},
			{Icon: "ph-trash", Color: "text-red-600 bg-red-100", Title: "Eliminar", Name: "delete"},
			{Icon: "ph-question", Color: "text-gray-600", Title: "Sin handler", Name: "unknown"},
		},
		Handlers: Handlers{
			"view":   func(id string) { viewed = append(viewed, id) },
			"delete": func(id string) { deleted = append(deleted, id) },
		},
		ID: func(r row) string { return r.ID },
	}

	require.NoError(t, Render(doc, "rows", []row{{"a", "Ana"}, {"b", "Beto"}}, twoColumns, opts))

	rows := memdom.As(doc.GetElementByID("rows")).Children()
	require.Len(t, rows, 2)
	cells := rows[1].Children()
	require.Len(t, cells, 3, "actions add a trailing cell")

	buttons := cells[2].QuerySelectorAll("button")
	require.Len(t, buttons, 3)
	assert.Equal(t,
		`<button class="text-blue-600 bg-blue-100 p-2 rounded transition duration-150" title="Ver perfil" data-action="view" data-id="b"><i class="ph ph-eye"></i></button>`,
		buttons[0].OuterHTML())
	wrapper := cells[2].QuerySelector("div")
	require.NotNil(t, wrapper)
	wc, _ := wrapper.Attribute("class")
	assert.Equal(t, "flex justify-center gap-2", wc)

	doc.Click(buttons[0])
	doc.Click(buttons[1].QuerySelector("i"))
	assert.NotPanics(t, func() { doc.Click(buttons[2]) })

	assert.Equal(t, []string{"b"}, viewed)
	assert.Equal(t, []string{"b"}, deleted)
}
