package menu

import (
	"log/slog"
	"strings"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/session"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const (
	ProfileButtonID = "profile-button"
	ProfileMenuID   = "profile-menu"
)

// closedClasses are present while the profile dropdown is closed.
var closedClasses = []string{"opacity-0", "scale-95", "pointer-events-none"}

// ProfileOptions configures NewProfile.
type ProfileOptions struct {
	// BasePath prefixes the login redirect, e.g. "/destinity-erp".
	BasePath string
	// OnLogout runs with the discarded token when .profile-logout is clicked.
	// It must call done once the server was notified; done navigates to login.
	OnLogout func(token string, done func())
	Logger   *slog.Logger
}

// Profile shows the signed-in user and toggles the profile dropdown.
type Profile struct {
	button dom.Element
	menu   dom.Element
	auth   *session.Auth
	nav    dom.Navigator
	opts   ProfileOptions
}

// NewProfile fills the dropdown with the session identity and binds its events.
// Without a session it navigates to the login page and returns an error.
func NewProfile(doc dom.Document, a *session.Auth, nav dom.Navigator, opts ProfileOptions) (*Profile, error) {
	button := doc.GetElementByID(ProfileButtonID)
	menu := doc.GetElementByID(ProfileMenuID)
	if !dom.Valid(button) || !dom.Valid(menu) {
		return nil, apperrors.New(apperrors.ErrCodeProfileInit, "Elementos del perfil no encontrados en el DOM")
	}

	nameEl := menu.QuerySelector(".profile-user")
	emailEl := menu.QuerySelector(".profile-email")
	if !dom.Valid(nameEl) || !dom.Valid(emailEl) {
		return nil, apperrors.New(apperrors.ErrCodeProfileInit, "Elementos para mostrar información del usuario no encontrados")
	}

	if a == nil {
		return nil, apperrors.New(apperrors.ErrCodeProfileInit, "Sesión no disponible")
	}
	claims, err := a.Claims()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProfileInit, "Error al decodificar el token")
	}
	p := &Profile{button: button, menu: menu, auth: a, nav: nav, opts: opts}
	if claims == nil {
		nav.Navigate(p.loginURL())
		return nil, apperrors.New(apperrors.ErrCodeProfileInit, "Sesión no válida. Redirigiendo al login")
	}

	id := auth.IdentityFromClaims(claims)
	nameEl.SetTextContent(id.DisplayName())
	emailEl.SetTextContent(id.DisplayEmail())

	button.AddEventListener("click", func(e dom.Event) {
		e.StopPropagation()
		p.Toggle()
	})
	doc.AddEventListener("click", func(e dom.Event) {
		target := e.Target()
		if menu.Contains(target) || button.Contains(target) {
			return
		}
		p.Close()
	})

	if logout := menu.QuerySelector(".profile-logout"); dom.Valid(logout) {
		logout.AddEventListener("click", func(e dom.Event) {
			e.PreventDefault()
			p.Logout()
		})
	}
	return p, nil
}

// Toggle opens a closed dropdown and closes an open one.
func (p *Profile) Toggle() {
	for _, c := range closedClasses {
		p.menu.ToggleClass(c)
	}
}

// Close hides the dropdown.
func (p *Profile) Close() { p.menu.AddClass(closedClasses...) }

// Open reports whether the dropdown is shown.
func (p *Profile) Open() bool { return !p.menu.HasClass("pointer-events-none") }

// Logout clears the session, notifies OnLogout and returns to the login page.
func (p *Profile) Logout() {
	tok := p.auth.Token()
	p.auth.Clear()
	p.logger().Info("session closed")

	done := func() { p.nav.Navigate(p.loginURL()) }
	if p.opts.OnLogout == nil || tok == "" {
		done()
		return
	}
	p.opts.OnLogout(tok, done)
}

func (p *Profile) loginURL() string {
	return strings.TrimRight(p.opts.BasePath, "/") + auth.PageLogin.Path()
}

func (p *Profile) logger() *slog.Logger {
	if p.opts.Logger != nil {
		return p.opts.Logger
	}
	return slog.Default()
}
