package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator   = (*StaticAuthenticator)(nil)
	_ ports.RevocationStore = (*MemoryRevocationStore)(nil)
)

// StaticAuthenticator accepts one email/password pair and returns a fixed token.
type StaticAuthenticator struct {
	LoginFunc func(ctx context.Context, creds domainauth.Credentials) (string, error)

	Email    string
	Password string
	Token    string

	mu    sync.Mutex
	calls []domainauth.Credentials
}

// ErrInvalidCredentials is returned by StaticAuthenticator for a mismatched login.
var ErrInvalidCredentials = errors.New("invalid credentials")

func (a *StaticAuthenticator) Login(ctx context.Context, creds domainauth.Credentials) (string, error) {
	a.mu.Lock()
	a.calls = append(a.calls, creds)
	a.mu.Unlock()

	if a.LoginFunc != nil {
		return a.LoginFunc(ctx, creds)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if creds.Email != a.Email || creds.Password != a.Password {
		return "", ErrInvalidCredentials
	}
	return a.Token, nil
}

// Calls returns the credentials received so far, in order.
func (a *StaticAuthenticator) Calls() []domainauth.Credentials {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domainauth.Credentials(nil), a.calls...)
}

// MemoryRevocationStore is an in-memory revocation store for unit tests.
type MemoryRevocationStore struct {
	DefaultTTL time.Duration
	Now        func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemoryRevocationStore creates a new in-memory revocation store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		DefaultTTL: time.Hour,
		revoked:    make(map[string]time.Time),
	}
}

func (m *MemoryRevocationStore) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *MemoryRevocationStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if expiresAt.IsZero() {
		expiresAt = m.now().Add(m.DefaultTTL)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.revoked == nil {
		m.revoked = make(map[string]time.Time)
	}
	m.revoked[token] = expiresAt
	return nil
}

func (m *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.revoked[token]
	if !ok {
		return false, nil
	}
	if !m.now().Before(until) {
		delete(m.revoked, token)
		return false, nil
	}
	return true, nil
}
