// Package menu wires the page chrome: mobile menu, profile dropdown and role navigation.
package menu

import (
	"github.com/destinity/erp-ui/internal/web/dom"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const (
	MobileButtonID = "mobile-menu-button"
	MobileMenuID   = "mobile-menu"
)

// Mobile toggles the collapsed navigation on small screens.
type Mobile struct {
	button dom.Element
	menu   dom.Element
}

// NewMobile binds the mobile menu. A click on the trigger toggles the menu;
// a click anywhere outside the trigger and the menu hides it.
func NewMobile(doc dom.Document) (*Mobile, error) {
	button := doc.GetElementByID(MobileButtonID)
	menu := doc.GetElementByID(MobileMenuID)
	if !dom.Valid(button) || !dom.Valid(menu) {
		return nil, apperrors.New(apperrors.ErrCodeMenuInit, "Elementos del menú móvil no encontrados en el DOM")
	}

	m := &Mobile{button: button, menu: menu}
	button.AddEventListener("click", func(dom.Event) { m.Toggle() })
	doc.AddEventListener("click", func(e dom.Event) {
		target := e.Target()
		if menu.Contains(target) || button.Contains(target) {
			return
		}
		m.Hide()
	})
	return m, nil
}

// Toggle flips the menu between hidden and visible.
func (m *Mobile) Toggle() { m.menu.ToggleClass("hidden") }

// Hide collapses the menu.
func (m *Mobile) Hide() { m.menu.AddClass("hidden") }

// Visible reports whether the menu is shown.
func (m *Mobile) Visible() bool { return !m.menu.HasClass("hidden") }
