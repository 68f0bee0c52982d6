// Package mocks provides mock implementations of the ports for testing the
// browser controllers and the UI server.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	authn := mocks.NewMockAuthenticator(ctrl)
//	authn.EXPECT().Login(gomock.Any(), gomock.Any()).Return("header.payload.sig", nil)
package mocks

// Generate mock for Authenticator interface from internal/ports package.
// This creates MockAuthenticator with methods for all Authenticator interface methods:
// Login
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=authenticator_mock.go github.com/destinity/erp-ui/internal/ports Authenticator

// Generate mock for RevocationStore interface from internal/ports package.
// This creates MockRevocationStore with methods for all RevocationStore interface methods:
// Revoke, IsRevoked
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=revocation_store_mock.go github.com/destinity/erp-ui/internal/ports RevocationStore
