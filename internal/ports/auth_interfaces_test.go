package ports_test

import (
	"testing"

	redisadapter "github.com/destinity/erp-ui/internal/adapters/redis"
	"github.com/destinity/erp-ui/internal/mocks"
	mockauth "github.com/destinity/erp-ui/internal/mocks/auth"
	"github.com/destinity/erp-ui/internal/ports"
	"github.com/destinity/erp-ui/internal/web/api"
)

// This test only verifies that implementations and mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.Authenticator = (*api.Client)(nil)
	var _ ports.Authenticator = (*mocks.MockAuthenticator)(nil)
	var _ ports.Authenticator = (*mockauth.StaticAuthenticator)(nil)
	var _ ports.RevocationStore = (*redisadapter.RevocationStore)(nil)
	var _ ports.RevocationStore = (*mocks.MockRevocationStore)(nil)
	var _ ports.RevocationStore = (*mockauth.MemoryRevocationStore)(nil)
}
