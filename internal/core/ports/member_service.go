package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

// MemberService manages human collaborators on a project.
type MemberService interface {
	List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.ProjectUser, error)
	Invite(ctx context.Context, actor authz.Actor, projectID, email, role string, locales []string) (*domain.ProjectUser, error)
	Update(ctx context.Context, actor authz.Actor, projectID, userID, role string, locales []string) error
	Remove(ctx context.Context, actor authz.Actor, projectID, userID string) error
}

// APIKeyService manages project API keys. Create returns the raw token
// exactly once; afterwards only the digest exists.
type APIKeyService interface {
	Create(ctx context.Context, actor authz.Actor, projectID, name, role string) (*domain.APIKey, string, error)
	List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.APIKey, error)
	Revoke(ctx context.Context, actor authz.Actor, projectID, keyID string) error
}
