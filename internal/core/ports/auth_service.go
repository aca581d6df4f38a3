package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

// AuthService issues the authenticated identities the policy engine
// consumes. It owns credentials; it grants no project authority.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// ActorBuilder resolves a raw identity against a target project into the
// canonical actor the policy engine decides on. It is the only place
// identity and membership are merged.
type ActorBuilder interface {
	Build(ctx context.Context, identity authz.Identity, projectID string) (authz.Actor, error)
}
