package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

// ProjectService covers the project lifecycle and its audit trail. Create and
// List are account-level surfaces keyed by the session user; everything else
// takes the resolved actor.
type ProjectService interface {
	Create(ctx context.Context, userID, name string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Get(ctx context.Context, actor authz.Actor, projectID string) (*domain.Project, error)
	Rename(ctx context.Context, actor authz.Actor, projectID, name string) error
	Delete(ctx context.Context, actor authz.Actor, projectID string) error
	Activity(ctx context.Context, actor authz.Actor, projectID string, limit int) ([]*domain.ActivityEntry, error)
}

// LocaleService manages a project's target languages.
type LocaleService interface {
	Add(ctx context.Context, actor authz.Actor, projectID, code string) (*domain.Locale, error)
	List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.Locale, error)
	Delete(ctx context.Context, actor authz.Actor, projectID, code string) error
}

// LabelService manages project-scoped term tags.
type LabelService interface {
	Create(ctx context.Context, actor authz.Actor, projectID, name, color string) (*domain.Label, error)
	List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.Label, error)
	Update(ctx context.Context, actor authz.Actor, projectID, labelID, name, color string) error
	Delete(ctx context.Context, actor authz.Actor, projectID, labelID string) error
}
