// Package redis provides Redis-based adapters for the ERP UI server.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces revocation keys.
const DefaultPrefix = "revoked:"

// ErrExpired is returned by Revoke when the token has already expired.
var ErrExpired = errors.New("token already expired")

// RevocationStore records logged-out bearer tokens until they expire.
// Keys are the prefix plus the hex SHA-256 of the token, so raw tokens never reach Redis.
type RevocationStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRevocationStore creates a store using DefaultPrefix.
func NewRevocationStore(client redis.UniversalClient) *RevocationStore {
	return NewRevocationStoreWithPrefix(client, DefaultPrefix)
}

// NewRevocationStoreWithPrefix creates a store with a custom key prefix.
func NewRevocationStoreWithPrefix(client redis.UniversalClient, prefix string) *RevocationStore {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return &RevocationStore{client: client, prefix: prefix, now: time.Now}
}

// Revoke marks token as revoked until expiresAt.
func (s *RevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return ErrExpired
	}
	if err := s.client.Set(ctx, s.key(token), s.now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked reports whether token was revoked and has not yet expired.
func (s *RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}
