package menu

import (
	"strings"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/session"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const (
	NavLinksID = "nav-links"
	// LinkClass styles every navigation link.
	LinkClass = "px-4 py-2 rounded-xl hover:bg-white hover:text-blue-800 transition"
)

// RenderByRole replaces the navigation links with the entries allowed for
// the session role. Unreadable sessions get the default menu.
func RenderByRole(doc dom.Document, a *session.Auth, basePath string) error {
	nav := doc.GetElementByID(NavLinksID)
	if !dom.Valid(nav) {
		return apperrors.New(apperrors.ErrCodeMenuRender, "Elemento de navegación no encontrado")
	}

	var role auth.Role
	if a != nil {
		if id, err := a.Identity(); err == nil {
			role = id.Role
		}
	}

	base := strings.TrimRight(basePath, "/")
	nav.SetInnerHTML("")
	for _, entry := range auth.MenuFor(role) {
		link := doc.CreateElement("a")
		link.SetAttribute("href", base+entry.Path())
		link.SetTextContent(entry.Name)
		link.SetClassName(LinkClass)
		nav.AppendChild(link)
	}
	return nil
}
