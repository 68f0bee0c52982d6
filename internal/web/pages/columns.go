package pages

import (
	"fmt"
	"html"
	"strconv"

	"github.com/destinity/erp-ui/internal/domain/model"
	"github.com/destinity/erp-ui/internal/web/table"
	"github.com/destinity/erp-ui/internal/web/uiutil"
)

const (
	codeClass   = "p-4 font-medium text-purple-600"
	avatarClass = "p-4 flex items-center gap-2"
	totalClass  = "p-4 font-medium"

	statusBadge   = `<span class="bg-green-100 text-green-800 px-3 py-1 rounded-full text-sm font-medium flex items-center gap-1 w-fit"><i class="ph ph-check-circle"></i> %s</span>`
	productBadge  = `<span class="bg-green-100 text-green-800 px-3 py-1 rounded-full text-sm font-medium flex items-center gap-1"><i class="ph ph-check-circle"></i> %s</span>`
	avatarCell    = `<div class="w-10 h-10 rounded-full bg-blue-100 flex items-center justify-center"><span class="font-bold text-blue-800">%s</span></div> %s`
	productName   = `<div class="flex items-center gap-3"%s><div class="bg-blue-100 p-2 rounded"><i class="ph ph-bed text-blue-600"></i></div><span class="font-medium">%s</span></div>`
	productStock  = `<span class="font-medium">%s</span><div class="w-32 h-2 bg-gray-200 rounded-full mt-1"><div class="w-2/3 h-2 bg-green-500 rounded-full"></div></div>`
	categoryBadge = `<span class="bg-blue-100 text-blue-800 px-3 py-1 rounded-full text-sm">%s</span>`
	paymentCell   = `<span class="flex items-center gap-1"><i class="ph ph-credit-card text-gray-600"></i> %s</span>`
)

var (
	viewAction   = table.Action{Icon: "ph-eye", Color: "text-blue-600 bg-blue-100", Title: "Ver perfil"}
	editAction   = table.Action{Icon: "ph-pencil", Color: "text-yellow-600 bg-yellow-100", Title: "Editar"}
	deleteAction = table.Action{Icon: "ph-trash", Color: "text-red-600 bg-red-100", Title: "Eliminar"}
)

func named(a table.Action, name string) table.Action {
	a.Name = name
	return a
}

// text escapes s for markup, substituting the empty marker for blanks.
func text(s string) string { return html.EscapeString(uiutil.OrEmpty(s)) }

// code renders the page-relative row code, e.g. EMP-2025-001.
func code(prefix string, index int) string {
	return fmt.Sprintf("%s-2025-%03d", prefix, index+1)
}

// EmployeeColumns are the columns of the employees table.
func EmployeeColumns() []table.Column[model.Employee] {
	return []table.Column[model.Employee]{
		{Class: codeClass, Content: func(_ model.Employee, i int) string { return code("EMP", i) }},
		{Class: avatarClass, Content: func(e model.Employee, _ int) string {
			return fmt.Sprintf(avatarCell,
				html.EscapeString(uiutil.Initials(e.FirstName, e.LastName)),
				text(e.FullName()))
		}},
		{Content: func(e model.Employee, _ int) string { return text(e.Department) }},
		{Content: func(e model.Employee, _ int) string { return text(e.Role) }},
		{Content: func(e model.Employee, _ int) string { return html.EscapeString(uiutil.FormatDate(e.CreatedAt)) }},
		{Content: func(e model.Employee, _ int) string { return fmt.Sprintf(statusBadge, text(e.Status)) }},
	}
}

// ProductColumns are the columns of the inventory table.
func ProductColumns() []table.Column[model.Product] {
	return []table.Column[model.Product]{
		{Content: func(p model.Product, _ int) string { return fmt.Sprintf(productName, descriptionTitle(p.Description), text(p.Name)) }},
		{Content: func(p model.Product, _ int) string { return fmt.Sprintf(productStock, strconv.Itoa(int(p.Stock))) }},
		{Content: func(p model.Product, _ int) string { return fmt.Sprintf(categoryBadge, text(p.Category)) }},
		{Content: func(p model.Product, _ int) string { return fmt.Sprintf(productBadge, text(p.Status)) }},
	}
}

// SaleColumns are the columns of the sales table.
func SaleColumns() []table.Column[model.Sale] {
	return []table.Column[model.Sale]{
		{Class: codeClass, Content: func(_ model.Sale, i int) string { return code("VTA", i) }},
		{Content: func(s model.Sale, _ int) string { return text(s.Name) }},
		{Content: func(s model.Sale, _ int) string { return html.EscapeString(uiutil.FormatDate(s.Sale)) }},
		{Class: totalClass, Content: func(s model.Sale, _ int) string { return formatTotal(s.Total) }},
		{Content: func(s model.Sale, _ int) string { return fmt.Sprintf(paymentCell, text(s.Payment)) }},
		{Content: func(s model.Sale, _ int) string { return fmt.Sprintf(statusBadge, text(s.Status)) }},
	}
}

// descriptionLimit bounds the product description shown as a tooltip.
const descriptionLimit = 80

func descriptionTitle(desc string) string {
	if desc == "" {
		return ""
	}
	return ` title="` + html.EscapeString(uiutil.TruncateWithEllipsis(desc, descriptionLimit)) + `"`
}

func formatTotal(total *float64) string {
	if total == nil {
		return uiutil.EmptyValue
	}
	return "$" + strconv.FormatFloat(*total, 'f', -1, 64)
}
