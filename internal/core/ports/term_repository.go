package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/domain"
)

// TermRepository defines persistence for terms.
type TermRepository interface {
	Create(ctx context.Context, t *domain.Term) error
	FindByID(ctx context.Context, projectID, id string) (*domain.Term, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Term, error)
	UpdateValue(ctx context.Context, projectID, id, value string) error
	// Delete removes the term and cascades to its translations.
	Delete(ctx context.Context, projectID, id string) error
	// SetLocked writes the lock flag. Last-write-wins: no expected prior
	// state is checked.
	SetLocked(ctx context.Context, projectID, id string, locked bool) error
	// SetLockedAll applies the flag to every term in the project and
	// returns the number of terms whose state changed.
	SetLockedAll(ctx context.Context, projectID string, locked bool) (int64, error)
	SetLabels(ctx context.Context, projectID, id string, labelIDs []string) error
}

// TranslationRepository defines persistence for translations. Upsert must be
// atomic on (term, locale): concurrent writers for the same pair converge on
// one row, never a duplicate.
type TranslationRepository interface {
	// Upsert creates or replaces the (term, locale) value and reports
	// whether a new row was created.
	Upsert(ctx context.Context, tr *domain.Translation) (created bool, err error)
	Find(ctx context.Context, termID, locale string) (*domain.Translation, error)
	ListByLocale(ctx context.Context, projectID, locale string) ([]*domain.Translation, error)
}
