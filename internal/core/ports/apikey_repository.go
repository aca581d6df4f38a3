package ports

import (
	"context"
	"time"

	"github.com/localekit/localization-system/internal/core/domain"
)

// APIKeyRepository defines persistence for project API keys.
type APIKeyRepository interface {
	Create(ctx context.Context, k *domain.APIKey) error
	FindByID(ctx context.Context, projectID, id string) (*domain.APIKey, error)
	// FindByHash resolves a key by its token digest, revoked or not.
	FindByHash(ctx context.Context, tokenHash string) (*domain.APIKey, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.APIKey, error)
	Revoke(ctx context.Context, projectID, id string, at time.Time) error
}

// APIKeyResolver turns a raw bearer token into its stored key record.
// Implementations may cache; a cached record must stop resolving promptly
// after revocation.
type APIKeyResolver interface {
	Resolve(ctx context.Context, token string) (*domain.APIKey, error)
}

// APIKeyCacheInvalidator drops a cached key record after revocation.
type APIKeyCacheInvalidator interface {
	Forget(ctx context.Context, tokenHash string) error
}
