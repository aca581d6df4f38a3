package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// ActorBuilder resolves a request's raw identity against a target project
// into the canonical authz.Actor. Read-only: it never mutates memberships or
// keys, and it never returns an error for a deniable state — those become
// actors the policy engine denies. Only infrastructure failures surface as
// errors.
type ActorBuilder struct {
	projects ports.ProjectRepository
	members  ports.MembershipRepository
	log      zerolog.Logger
}

func NewActorBuilder(projects ports.ProjectRepository, members ports.MembershipRepository, log zerolog.Logger) *ActorBuilder {
	return &ActorBuilder{projects: projects, members: members, log: log}
}

// Build merges identity and membership. Resolution order:
//   - revoked API key → anonymous, regardless of stored role
//   - API key scoped to a different project → foreign-key actor (denied,
//     never re-scoped)
//   - owning user → owner, even if a stale membership row also exists
//   - membership row → member, with the stored locale assignment parsed
//     here and nowhere else
//   - otherwise → no-relationship actor (reads as not found downstream)
func (b *ActorBuilder) Build(ctx context.Context, identity authz.Identity, projectID string) (authz.Actor, error) {
	if key := identity.Key; key != nil {
		if key.Revoked {
			b.log.Debug().Str("key_id", key.ID).Msg("revoked API key treated as anonymous")
			return authz.Anonymous(), nil
		}
		if key.ProjectID != projectID {
			return authz.ForeignKey(key.ID), nil
		}
		return authz.APIKeyActor(projectID, key.ID, key.Role, false), nil
	}

	if identity.UserID == "" {
		return authz.Anonymous(), nil
	}

	project, err := b.projects.FindByID(ctx, projectID)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return authz.NoRelationship(projectID), nil
	}
	if err != nil {
		return authz.Actor{}, fmt.Errorf("build actor: resolve project: %w", err)
	}

	if project.OwnerID == identity.UserID {
		return authz.Owner(projectID, identity.UserID), nil
	}

	member, err := b.members.Find(ctx, projectID, identity.UserID)
	if errors.Is(err, domain.ErrMemberNotFound) {
		return authz.NoRelationship(projectID), nil
	}
	if err != nil {
		return authz.Actor{}, fmt.Errorf("build actor: resolve membership: %w", err)
	}

	return authz.Member(projectID, identity.UserID, memberRole(member.Role), authz.RestrictedLocales(member.Locales...)), nil
}

// memberRole maps a stored membership role to the policy enum. Unknown
// stored values degrade to editor, never escalate.
func memberRole(stored string) authz.Role {
	if stored == domain.MemberRoleAdmin {
		return authz.RoleAdmin
	}
	return authz.RoleEditor
}

// KeyRole maps a stored API key role to the policy enum. Unknown stored
// values degrade to read-only.
func KeyRole(stored string) authz.Role {
	switch stored {
	case domain.KeyRoleAdmin:
		return authz.RoleAdmin
	case domain.KeyRoleEditor:
		return authz.RoleEditor
	default:
		return authz.RoleReadOnly
	}
}
