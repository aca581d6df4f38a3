package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

// TermService manages translatable keys and their lock state.
type TermService interface {
	Create(ctx context.Context, actor authz.Actor, projectID, value string) (*domain.Term, error)
	List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.Term, error)
	Update(ctx context.Context, actor authz.Actor, projectID, termID, value string) error
	Delete(ctx context.Context, actor authz.Actor, projectID, termID string) error
	SetLocked(ctx context.Context, actor authz.Actor, projectID, termID string, locked bool) error
	SetLockedAll(ctx context.Context, actor authz.Actor, projectID string, locked bool) (int64, error)
	SetLabels(ctx context.Context, actor authz.Actor, projectID, termID string, labelIDs []string) error
}

// TranslationService writes and reads per-locale values for terms.
type TranslationService interface {
	Upsert(ctx context.Context, actor authz.Actor, projectID, termID, locale, value string) (*domain.Translation, error)
	ListByLocale(ctx context.Context, actor authz.Actor, projectID, locale string) ([]*domain.Translation, error)
}
