//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are installed globally via `go install` and are not tracked in go.mod
// since they are development tools, not runtime dependencies.
package tools

// Development tools (install via `go install`):
//
// mockgen - Generates the gomock doubles in internal/mocks
//   Install: go install go.uber.org/mock/mockgen@v0.6.0
//   Run: go generate ./internal/mocks
//
// Air - Live reload for the UI server (DEV=true serves frontend/ from disk)
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
//
// Browser app build (see Makefile target "wasm"):
//   GOOS=js GOARCH=wasm go build -o frontend/static/erp.wasm ./cmd/erp-web
//   cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" frontend/static/js/
