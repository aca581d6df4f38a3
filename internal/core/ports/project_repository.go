package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/domain"
)

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// ListForUser returns every project the user owns or is a member of.
	ListForUser(ctx context.Context, userID string) ([]*domain.Project, error)
	UpdateName(ctx context.Context, id, name string) error
	// Delete removes the project and cascades to its terms, translations,
	// locales, labels, memberships, API keys, and activity.
	Delete(ctx context.Context, id string) error
}

// LocaleRepository defines persistence for a project's target locales.
type LocaleRepository interface {
	Add(ctx context.Context, l *domain.Locale) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Locale, error)
	Exists(ctx context.Context, projectID, code string) (bool, error)
	// Delete removes the locale and cascades to its translations.
	Delete(ctx context.Context, projectID, code string) error
}

// LabelRepository defines persistence for project labels.
type LabelRepository interface {
	Create(ctx context.Context, l *domain.Label) error
	FindByID(ctx context.Context, projectID, id string) (*domain.Label, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Label, error)
	Update(ctx context.Context, projectID, id, name, color string) error
	// Delete removes the label and detaches it from every term.
	Delete(ctx context.Context, projectID, id string) error
}
