package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "revoked_token:"

// RedisRegistry keys each revoked token with a TTL equal to its
// remaining lifetime, so eviction tracks the embedded expiry without a
// sweep of our own. Suitable when several instances share sessions.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

func (r *RedisRegistry) Revoke(ctx context.Context, token string, expiresAt time.Time) error {

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already past its expiry; validation rejects it regardless.
		return nil
	}

	if err := r.client.Set(ctx, revocationKeyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("writing revocation entry: %w", err)
	}

	return nil
}

func (r *RedisRegistry) IsRevoked(ctx context.Context, token string) (bool, error) {

	n, err := r.client.Exists(ctx, revocationKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("reading revocation entry: %w", err)
	}

	return n > 0, nil
}
