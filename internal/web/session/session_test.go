package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinity/erp-ui/internal/domain/auth"
	apperrors "github.com/destinity/erp-ui/internal/errors"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestMemoryStore(t *testing.T) {
	var s MemoryStore
	_, ok := s.Get("k")
	assert.False(t, ok)

	s.Set("k", "v")
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	s.Remove("k")
	_, ok = s.Get("k")
	assert.False(t, ok)

	seeded := NewMemoryStore(map[string]string{TokenKey: "t"})
	v, _ = seeded.Get(TokenKey)
	assert.Equal(t, "t", v)
}

func TestAuthTokenLifecycle(t *testing.T) {
	store := NewMemoryStore(nil)
	a := NewAuth(store)

	assert.False(t, a.HasToken())
	claims, err := a.Claims()
	require.NoError(t, err)
	assert.Nil(t, claims)

	a.SetToken("  abc.def.ghi ")
	raw, ok := store.Get(TokenKey)
	require.True(t, ok)
	assert.Equal(t, "abc.def.ghi", raw)

	a.SetToken("")
	assert.False(t, a.HasToken())

	a.SetToken("x.y.z")
	a.Clear()
	assert.Equal(t, "", a.Token())
}

func TestAuthClaims(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("valid token", func(t *testing.T) {
		a := NewAuth(nil, WithClock(clock))
		a.SetToken(signed(t, jwt.MapClaims{
			"name":  "Ana",
			"email": "ana@destinity.com",
			"role":  "RRHH",
			"exp":   now.Add(time.Hour).Unix(),
		}))

		claims, err := a.Claims()
		require.NoError(t, err)
		assert.Equal(t, "Ana", claims["name"])

		id, err := a.Identity()
		require.NoError(t, err)
		assert.Equal(t, auth.RoleHR, id.Role)
		assert.Equal(t, "ana@destinity.com", id.DisplayEmail())
		assert.True(t, a.HasToken())
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		a := NewAuth(nil, WithClock(clock))
		a.SetToken(signed(t, jwt.MapClaims{"name": "Ana", "exp": now.Add(-time.Minute).Unix()}))

		claims, err := a.Claims()
		require.NoError(t, err)
		assert.Nil(t, claims)
		assert.False(t, a.HasToken())
	})

	t.Run("token without exp never expires", func(t *testing.T) {
		a := NewAuth(nil, WithClock(clock))
		a.SetToken(signed(t, jwt.MapClaims{"name": "Ana"}))

		claims, err := a.Claims()
		require.NoError(t, err)
		assert.NotNil(t, claims)
	})

	t.Run("malformed token", func(t *testing.T) {
		a := NewAuth(nil)
		a.SetToken("not-a-token")

		_, err := a.Claims()
		require.Error(t, err)
		assert.True(t, apperrors.IsMalformedToken(err))

		_, err = a.Identity()
		assert.True(t, apperrors.IsMalformedToken(err))
		assert.True(t, a.HasToken(), "decode failures keep the stored value")
	})
}
