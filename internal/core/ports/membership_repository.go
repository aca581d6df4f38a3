package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/domain"
)

// MembershipRepository defines persistence for project memberships.
type MembershipRepository interface {
	Create(ctx context.Context, m *domain.ProjectUser) error
	Find(ctx context.Context, projectID, userID string) (*domain.ProjectUser, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ProjectUser, error)
	// UpdateRole replaces the role and the stored locale assignment in one
	// write, so an admin promotion clears the restriction atomically.
	UpdateRole(ctx context.Context, projectID, userID, role string, locales []string) error
	Delete(ctx context.Context, projectID, userID string) error
}
