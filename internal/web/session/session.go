// Package session keeps the browser-side auth token and exposes its claims.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/token"
)

// TokenKey is the storage key holding the raw auth token.
const TokenKey = "authToken"

// Store is a string key/value store such as window.sessionStorage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// MemoryStore is a Store backed by a map. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a MemoryStore seeded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	s := &MemoryStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
}

// Remove implements Store.
func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Auth is the auth context handed to controllers in place of ambient storage.
type Auth struct {
	store Store
	now   func() time.Time
}

// Option configures an Auth.
type Option func(*Auth)

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(a *Auth) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAuth returns an Auth over store. A nil store is replaced by an empty MemoryStore.
func NewAuth(store Store, opts ...Option) *Auth {
	if store == nil {
		store = NewMemoryStore(nil)
	}
	a := &Auth{store: store, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetToken stores tok. Blank tokens clear the session.
func (a *Auth) SetToken(tok string) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		a.Clear()
		return
	}
	a.store.Set(TokenKey, tok)
}

// Token returns the stored token or "".
func (a *Auth) Token() string {
	tok, ok := a.store.Get(TokenKey)
	if !ok {
		return ""
	}
	return tok
}

// HasToken reports whether a token is stored.
func (a *Auth) HasToken() bool { return a.Token() != "" }

// Claims decodes the stored token. No token yields nil claims and a nil
// error. An expired token is removed and reported the same way.
func (a *Auth) Claims() (jwt.MapClaims, error) {
	claims, err := token.Decode(a.Token())
	if err != nil || claims == nil {
		return nil, err
	}
	exp := token.ExpiresAt(claims)
	if !exp.IsZero() && !a.now().Before(exp) {
		a.Clear()
		return nil, nil
	}
	return claims, nil
}

// Identity returns the display view of Claims.
func (a *Auth) Identity() (auth.Identity, error) {
	claims, err := a.Claims()
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.IdentityFromClaims(claims), nil
}

// Clear removes the token.
func (a *Auth) Clear() { a.store.Remove(TokenKey) }
