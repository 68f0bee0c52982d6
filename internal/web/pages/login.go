package pages

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/ports"
	"github.com/destinity/erp-ui/internal/web/api"
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/forms"
	"github.com/destinity/erp-ui/internal/web/session"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

// DOM anchors of the login page.
const (
	LoginFormID     = "login-form"
	EmailID         = "email"
	PasswordID      = "password"
	EmailErrorID    = "email-error"
	PasswordErrorID = "password-error"
	GeneralErrorID  = "general-error"
	LoginButtonID   = "login-button"
	SpinnerID       = "spinner"
)

// Messages shown by the login page.
const (
	MsgEmailRequired    = "El campo correo electrónico no puede estar vacío"
	MsgPasswordRequired = "El campo contraseña no puede estar vacío"
	MsgNoToken          = "No se pudo completar el inicio de sesión."

	labelIdle    = "Ingresar"
	labelLoading = "Procesando..."
)

// LoginOptions configures NewLogin.
type LoginOptions struct {
	BasePath      string
	Authenticator ports.Authenticator
	Auth          *session.Auth
	Navigator     dom.Navigator
	// Forms schedules the banner shake; nil uses a new Helpers.
	Forms *forms.Helpers
	// Go runs the login request off the event callback. nil starts a goroutine.
	Go     func(fn func())
	Logger *slog.Logger
}

// Login drives the login form.
type Login struct {
	ctx  context.Context
	opts LoginOptions

	form, email, password    dom.Element
	emailErr, passwordErr    dom.Element
	general, button, spinner dom.Element

	mu      sync.Mutex
	loading bool
}

// NewLogin binds the login form. Requests run under ctx, so cancelling it
// abandons an in-flight login.
func NewLogin(ctx context.Context, doc dom.Document, opts LoginOptions) (*Login, error) {
	if opts.Forms == nil {
		opts.Forms = forms.NewHelpers(nil)
	}
	if opts.Go == nil {
		opts.Go = func(fn func()) { go fn() }
	}
	if opts.Authenticator == nil || opts.Auth == nil || opts.Navigator == nil {
		return nil, apperrors.InvalidArgument("login: authenticator, auth and navigator are required")
	}

	l := &Login{ctx: ctx, opts: opts}
	for _, b := range []struct {
		id string
		el *dom.Element
	}{
		{LoginFormID, &l.form},
		{EmailID, &l.email},
		{PasswordID, &l.password},
		{EmailErrorID, &l.emailErr},
		{PasswordErrorID, &l.passwordErr},
		{GeneralErrorID, &l.general},
		{LoginButtonID, &l.button},
		{SpinnerID, &l.spinner},
	} {
		el := doc.GetElementByID(b.id)
		if !dom.Valid(el) {
			return nil, apperrors.TargetNotFound(b.id)
		}
		*b.el = el
	}

	l.form.AddEventListener("submit", func(e dom.Event) {
		e.PreventDefault()
		l.Submit()
	})
	for _, pair := range [][2]dom.Element{{l.email, l.emailErr}, {l.password, l.passwordErr}} {
		field, slot := pair[0], pair[1]
		field.AddEventListener("input", func(dom.Event) {
			field.RemoveClass(forms.ErrorClass)
			slot.AddClass(forms.HiddenClass)
			l.general.AddClass(forms.HiddenClass)
		})
	}
	return l, nil
}

func (l *Login) logger() *slog.Logger {
	if l.opts.Logger != nil {
		return l.opts.Logger
	}
	return slog.Default()
}

// Submit validates the form and starts a login. It is a no-op while a login is in flight.
func (l *Login) Submit() {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	err := l.opts.Forms.ClearErrors(
		[]dom.Element{l.email, l.password},
		[]dom.Element{l.emailErr, l.passwordErr},
		l.general,
	)
	if err != nil {
		l.logger().Error("clear login errors", "error", err)
		return
	}

	ok, err := forms.ValidateRequired([]forms.Required{
		{Field: l.email, Slot: l.emailErr, Message: MsgEmailRequired},
		{Field: l.password, Slot: l.passwordErr, Message: MsgPasswordRequired},
	})
	if err != nil {
		l.logger().Error("validate login form", "error", err)
		return
	}
	if !ok {
		return
	}

	creds := auth.Credentials{
		Email:    strings.TrimSpace(l.email.Value()),
		Password: strings.TrimSpace(l.password.Value()),
	}
	l.setLoading(true)
	l.opts.Go(func() {
		defer l.setLoading(false)
		l.login(creds)
	})
}

func (l *Login) login(creds auth.Credentials) {
	tok, err := l.opts.Authenticator.Login(l.ctx, creds)
	if err != nil {
		if apperrors.IsCanceled(err) || errors.Is(err, context.Canceled) {
			return
		}
		msg := api.DefaultLoginError
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		l.logger().Warn("login failed", "error", err)
		l.showError(msg)
		return
	}

	if tok == "" {
		l.showError(MsgNoToken)
		return
	}

	l.opts.Auth.SetToken(tok)
	l.opts.Navigator.Navigate(strings.TrimRight(l.opts.BasePath, "/") + auth.PageHome.Path())
}

func (l *Login) showError(msg string) {
	if err := l.opts.Forms.ShowGeneralError(l.general, msg); err != nil {
		l.logger().Error("show login error", "error", err)
	}
}

func (l *Login) setLoading(loading bool) {
	l.mu.Lock()
	l.loading = loading
	l.mu.Unlock()

	l.button.SetDisabled(loading)
	if span := l.button.QuerySelector("span"); dom.Valid(span) {
		if loading {
			span.SetTextContent(labelLoading)
		} else {
			span.SetTextContent(labelIdle)
		}
	}
	if loading {
		l.spinner.RemoveClass(forms.HiddenClass)
	} else {
		l.spinner.AddClass(forms.HiddenClass)
	}
}

// Loading reports whether a login is in flight.
func (l *Login) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}
