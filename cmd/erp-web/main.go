//go:build js && wasm

// Command erp-web is the browser application of the ERP, compiled to
// WebAssembly and loaded by every page the UI server renders.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/destinity/erp-ui/internal/web/api"
	"github.com/destinity/erp-ui/internal/web/app"
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/dom/jsdom"
	"github.com/destinity/erp-ui/internal/web/pages"
	"github.com/destinity/erp-ui/internal/web/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	doc := jsdom.NewDocument()
	cfg := app.ReadConfig(doc)
	auth := session.NewAuth(jsdom.NewSessionStorage())
	client := api.NewClient(api.Options{
		BaseURL: jsdom.Origin() + cfg.BasePath,
		Token:   auth.Token,
		Logger:  logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	jsdom.OnPageHide(cancel)

	app.New(app.Deps{
		Doc:       doc,
		Auth:      auth,
		API:       client,
		Navigator: jsdom.Location{},
		Handlers:  jsdom.GlobalActions(pages.ActionNames()...),
		Logger:    logger.With("request_id", requestID(doc)),
	}).Start(ctx)

	// Callbacks registered with syscall/js need the runtime alive.
	select {}
}

func requestID(doc dom.Document) string {
	body := doc.Body()
	if !dom.Valid(body) {
		return ""
	}
	id, _ := body.Attribute("data-request-id")
	return id
}
