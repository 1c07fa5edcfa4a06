package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConfirmTokenStore implements ports.ConfirmTokenStore. Only token
// hashes are stored; expiry is enforced by the key TTL.
type ConfirmTokenStore struct {
	client *goredis.Client
	prefix string
}

// NewConfirmTokenStore creates a new Redis-backed confirm token store.
func NewConfirmTokenStore(client *goredis.Client) *ConfirmTokenStore {
	return &ConfirmTokenStore{
		client: client,
		prefix: "confirm:",
	}
}

func (s *ConfirmTokenStore) key(verificationID int64) string {
	return fmt.Sprintf("%s%d", s.prefix, verificationID)
}

// Store writes the token hash with its TTL, replacing any prior token
// for the same verification.
func (s *ConfirmTokenStore) Store(ctx context.Context, verificationID int64, tokenHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(verificationID), tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("redis confirm token store: %w", err)
	}
	return nil
}

// Get returns the stored hash, or "" when absent or expired.
func (s *ConfirmTokenStore) Get(ctx context.Context, verificationID int64) (string, error) {
	val, err := s.client.Get(ctx, s.key(verificationID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis confirm token get: %w", err)
	}
	return val, nil
}

// Delete removes a consumed token.
func (s *ConfirmTokenStore) Delete(ctx context.Context, verificationID int64) error {
	if err := s.client.Del(ctx, s.key(verificationID)).Err(); err != nil {
		return fmt.Errorf("redis confirm token delete: %w", err)
	}
	return nil
}
