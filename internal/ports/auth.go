// Package ports defines the interfaces (hexagonal ports) shared by the
// browser app and the UI server. Implementations live in internal/web/api
// and internal/adapters.
package ports

import (
	"context"
	"time"

	domainauth "github.com/destinity/erp-ui/internal/domain/auth"
)

// Authenticator exchanges credentials for a session token.
type Authenticator interface {
	// Login returns the issued token. A successful exchange may return "" when
	// the backend issued no token.
	Login(ctx context.Context, creds domainauth.Credentials) (string, error)
}

// RevocationStore records tokens that were logged out before they expire.
type RevocationStore interface {
	// Revoke marks token as revoked until expiresAt.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	// IsRevoked reports whether token was revoked and has not expired yet.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
