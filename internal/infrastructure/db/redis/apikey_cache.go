package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// APIKeyCache resolves raw bearer tokens to stored key records through Redis,
// falling back to the repository on a miss. Entries are keyed by token digest
// so the raw credential never touches Redis.
// Key format: apikey:<sha256(token)>
type APIKeyCache struct {
	client *redis.Client
	repo   ports.APIKeyRepository
	ttl    time.Duration
}

func NewAPIKeyCache(client *redis.Client, repo ports.APIKeyRepository, ttl time.Duration) *APIKeyCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &APIKeyCache{client: client, repo: repo, ttl: ttl}
}

// Resolve returns the key record for a raw token. Revoked keys are cached
// like any other record; revocation semantics live in the policy engine, and
// Forget keeps the cache from serving stale pre-revocation records.
func (c *APIKeyCache) Resolve(ctx context.Context, token string) (*domain.APIKey, error) {
	hash := domain.HashAPIKeyToken(token)

	raw, err := c.client.Get(ctx, cacheKey(hash)).Bytes()
	if err == nil {
		var k domain.APIKey
		if err := json.Unmarshal(raw, &k); err == nil {
			return &k, nil
		}
		// Unreadable entry: drop it and fall through to the repository.
		_ = c.client.Del(ctx, cacheKey(hash)).Err()
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("apikey cache get: %w", err)
	}

	k, err := c.repo.FindByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(k); err == nil {
		_ = c.client.Set(ctx, cacheKey(hash), raw, c.ttl).Err()
	}
	return k, nil
}

// Forget drops the cached record for a token digest. Called on revocation so
// the revoked state is visible on the next request rather than after TTL.
func (c *APIKeyCache) Forget(ctx context.Context, tokenHash string) error {
	if err := c.client.Del(ctx, cacheKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("apikey cache del: %w", err)
	}
	return nil
}

func cacheKey(hash string) string {
	return "apikey:" + hash
}
