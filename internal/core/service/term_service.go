package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
	"github.com/localekit/localization-system/internal/metrics"
)

// TermService handles term lifecycle, the lock state machine, and label
// assignment. Mutations against an existing term run the policy check
// twice: once before the fetch, so the denial an unauthorized caller sees
// does not depend on whether the term exists, and once against the fetched
// lock snapshot; the guarded write uses the same snapshot.
type TermService struct {
	terms    ports.TermRepository
	labels   ports.LabelRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewTermService(terms ports.TermRepository, labels ports.LabelRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *TermService {
	return &TermService{terms: terms, labels: labels, recorder: recorder, logger: logger}
}

func (s *TermService) Create(ctx context.Context, actor authz.Actor, projectID, value string) (*domain.Term, error) {
	if err := authorize(actor, authz.ActionCreateTerm, authz.Resource{}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	term := &domain.Term{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Value:     value,
		Locked:    false, // terms are born unlocked
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.terms.Create(ctx, term); err != nil {
		return nil, err
	}

	s.record(actor, projectID, "term.created", term.ID)
	return term, nil
}

func (s *TermService) List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.Term, error) {
	if err := authorize(actor, authz.ActionViewProject, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.terms.ListByProject(ctx, projectID)
}

func (s *TermService) Update(ctx context.Context, actor authz.Actor, projectID, termID, value string) error {
	if err := authorize(actor, authz.ActionUpdateTerm, authz.Resource{}); err != nil {
		return err
	}
	term, err := s.terms.FindByID(ctx, projectID, termID)
	if err != nil {
		return err
	}
	if err := authorize(actor, authz.ActionUpdateTerm, authz.Resource{TermLocked: term.Locked}); err != nil {
		return err
	}
	if err := s.terms.UpdateValue(ctx, projectID, termID, value); err != nil {
		return err
	}
	s.record(actor, projectID, "term.updated", termID)
	return nil
}

func (s *TermService) Delete(ctx context.Context, actor authz.Actor, projectID, termID string) error {
	if err := authorize(actor, authz.ActionDeleteTerm, authz.Resource{}); err != nil {
		return err
	}
	term, err := s.terms.FindByID(ctx, projectID, termID)
	if err != nil {
		return err
	}
	if err := authorize(actor, authz.ActionDeleteTerm, authz.Resource{TermLocked: term.Locked}); err != nil {
		return err
	}
	if err := s.terms.Delete(ctx, projectID, termID); err != nil {
		return err
	}
	s.record(actor, projectID, "term.deleted", termID)
	return nil
}

// SetLocked applies a lock transition. The transition itself is gated
// admin-or-above; the term's current state never blocks it, so re-locking a
// locked term is an allowed no-op and toggles are last-write-wins.
func (s *TermService) SetLocked(ctx context.Context, actor authz.Actor, projectID, termID string, locked bool) error {
	action := authz.ActionUnlockTerm
	transition := "unlock"
	activity := "term.unlocked"
	if locked {
		action = authz.ActionLockTerm
		transition = "lock"
		activity = "term.locked"
	}
	if err := authorize(actor, action, authz.Resource{}); err != nil {
		return err
	}
	if _, err := s.terms.FindByID(ctx, projectID, termID); err != nil {
		return err
	}

	if err := s.terms.SetLocked(ctx, projectID, termID, locked); err != nil {
		return err
	}
	metrics.TermLockTransitionsTotal.WithLabelValues(transition).Inc()
	s.record(actor, projectID, activity, termID)
	return nil
}

// SetLockedAll applies the same transition idempotently to every term in
// the project.
func (s *TermService) SetLockedAll(ctx context.Context, actor authz.Actor, projectID string, locked bool) (int64, error) {
	action := authz.ActionUnlockAllTerms
	transition := "unlock_all"
	activity := "term.unlocked_all"
	if locked {
		action = authz.ActionLockAllTerms
		transition = "lock_all"
		activity = "term.locked_all"
	}
	if err := authorize(actor, action, authz.Resource{}); err != nil {
		return 0, err
	}

	changed, err := s.terms.SetLockedAll(ctx, projectID, locked)
	if err != nil {
		return 0, err
	}
	metrics.TermLockTransitionsTotal.WithLabelValues(transition).Inc()
	s.logger.Info().Str("project_id", projectID).Bool("locked", locked).Int64("changed", changed).Msg("bulk lock transition")
	s.record(actor, projectID, activity, projectID)
	return changed, nil
}

// SetLabels replaces the term's label assignment. Guarded by the term's
// lock snapshot; every label must exist in the project.
func (s *TermService) SetLabels(ctx context.Context, actor authz.Actor, projectID, termID string, labelIDs []string) error {
	if err := authorize(actor, authz.ActionSetTermLabels, authz.Resource{}); err != nil {
		return err
	}
	term, err := s.terms.FindByID(ctx, projectID, termID)
	if err != nil {
		return err
	}
	if err := authorize(actor, authz.ActionSetTermLabels, authz.Resource{TermLocked: term.Locked}); err != nil {
		return err
	}

	for _, labelID := range labelIDs {
		if _, err := s.labels.FindByID(ctx, projectID, labelID); err != nil {
			return err
		}
	}

	if err := s.terms.SetLabels(ctx, projectID, termID, labelIDs); err != nil {
		return err
	}
	s.record(actor, projectID, "label.assigned", termID)
	return nil
}

func (s *TermService) record(actor authz.Actor, projectID, action, resource string) {
	kind, id := actorRef(actor)
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: projectID,
		ActorKind: kind,
		ActorID:   id,
		Action:    action,
		Resource:  resource,
		CreatedAt: time.Now().UTC(),
	})
}
