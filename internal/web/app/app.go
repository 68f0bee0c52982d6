// Package app boots the browser application for the current page.
package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/domain/model"
	"github.com/destinity/erp-ui/internal/ports"
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/forms"
	"github.com/destinity/erp-ui/internal/web/menu"
	"github.com/destinity/erp-ui/internal/web/pages"
	"github.com/destinity/erp-ui/internal/web/session"
	"github.com/destinity/erp-ui/internal/web/table"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

// Body attributes written by the UI server.
const (
	AttrPage         = "data-page"
	AttrBasePath     = "data-base-path"
	AttrItemsPerPage = "data-items-per-page"

	DefaultBasePath = "/destinity-erp"
)

// Backend is the subset of the REST client the pages use.
type Backend interface {
	ports.Authenticator
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListSales(ctx context.Context) ([]model.Sale, error)
	Logout(ctx context.Context, token string) error
}

// Config is what the page declares on its body element.
type Config struct {
	Page     auth.Page
	BasePath string
	PerPage  int
}

// ReadConfig reads Config from the body attributes, applying defaults.
func ReadConfig(doc dom.Document) Config {
	cfg := Config{Page: auth.PageLogin, BasePath: DefaultBasePath, PerPage: pages.DefaultPerPage}
	body := doc.Body()
	if !dom.Valid(body) {
		return cfg
	}
	if v, ok := body.Attribute(AttrPage); ok && strings.TrimSpace(v) != "" {
		cfg.Page = auth.Page(strings.TrimSpace(v))
	}
	if v, ok := body.Attribute(AttrBasePath); ok {
		cfg.BasePath = strings.TrimRight(strings.TrimSpace(v), "/")
	}
	if v, ok := body.Attribute(AttrItemsPerPage); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.PerPage = n
		}
	}
	return cfg
}

// Deps are the collaborators of the app.
type Deps struct {
	Doc       dom.Document
	Auth      *session.Auth
	API       Backend
	Navigator dom.Navigator
	Handlers  table.Handlers
	Forms     *forms.Helpers
	// Go runs blocking work off the event loop. nil starts a goroutine.
	Go     func(fn func())
	Logger *slog.Logger
}

// App wires the controllers of one page load.
type App struct {
	deps Deps

	mu     sync.Mutex
	cfg    Config
	chrome *menu.Chrome
	login  *pages.Login
}

// New returns an App. Missing optional deps get defaults.
func New(deps Deps) *App {
	if deps.Auth == nil {
		deps.Auth = session.NewAuth(nil)
	}
	if deps.Forms == nil {
		deps.Forms = forms.NewHelpers(nil)
	}
	if deps.Go == nil {
		deps.Go = func(fn func()) { go fn() }
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{deps: deps}
}

// Start boots the app once the document is ready.
func (a *App) Start(ctx context.Context) {
	a.deps.Doc.OnReady(func() {
		if err := a.Boot(ctx); err != nil {
			a.deps.Logger.Error("app boot failed", "error", err)
		}
	})
}

// Boot reads the page config and starts its controllers. List fetches run
// through Deps.Go under ctx, so cancelling ctx abandons them.
func (a *App) Boot(ctx context.Context) error {
	if a.deps.Doc == nil || a.deps.API == nil || a.deps.Navigator == nil {
		return apperrors.InvalidArgument("app: document, api and navigator are required")
	}
	cfg := ReadConfig(a.deps.Doc)
	log := a.deps.Logger.With("page", string(cfg.Page))

	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	if cfg.Page == auth.PageLogin {
		l, err := pages.NewLogin(ctx, a.deps.Doc, pages.LoginOptions{
			BasePath:      cfg.BasePath,
			Authenticator: a.deps.API,
			Auth:          a.deps.Auth,
			Navigator:     a.deps.Navigator,
			Forms:         a.deps.Forms,
			Go:            a.deps.Go,
			Logger:        log,
		})
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.login = l
		a.mu.Unlock()
		return nil
	}

	chrome := menu.Init(a.deps.Doc, a.deps.Auth, a.deps.Navigator, menu.ProfileOptions{
		BasePath: cfg.BasePath,
		OnLogout: func(tok string, done func()) {
			a.deps.Go(func() {
				if err := a.deps.API.Logout(ctx, tok); err != nil {
					log.Warn("logout notification failed", "error", err)
				}
				done()
			})
		},
		Logger: log,
	}, func(err error) {
		log.Error("chrome init failed", "error", err)
	})

	listCfg := pages.ListConfig{
		Doc:      a.deps.Doc,
		Handlers: a.deps.Handlers,
		PerPage:  cfg.PerPage,
		Logger:   log,
	}
	var load func(context.Context) error
	switch cfg.Page {
	case auth.PageHumanResources:
		load = pages.NewEmployees(listCfg, a.deps.API.ListEmployees).Load
	case auth.PageInventory:
		load = pages.NewProducts(listCfg, a.deps.API.ListProducts).Load
	case auth.PageSales:
		load = pages.NewSales(listCfg, a.deps.API.ListSales).Load
	}

	a.mu.Lock()
	a.chrome = chrome
	a.mu.Unlock()

	if load != nil {
		a.deps.Go(func() {
			if err := load(ctx); err != nil {
				log.Error("list render failed", "error", err)
			}
		})
	}
	return nil
}

// Config returns the config read by the last Boot.
func (a *App) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}
