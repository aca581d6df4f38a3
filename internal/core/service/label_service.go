package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// LabelService manages project labels. Attaching labels to terms lives in
// TermService because that path is constrained by term lock state.
type LabelService struct {
	labels   ports.LabelRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewLabelService(labels ports.LabelRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *LabelService {
	return &LabelService{labels: labels, recorder: recorder, logger: logger}
}

func (s *LabelService) Create(ctx context.Context, actor authz.Actor, projectID, name, color string) (*domain.Label, error) {
	if err := authorize(actor, authz.ActionCreateLabel, authz.Resource{}); err != nil {
		return nil, err
	}

	label := &domain.Label{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.labels.Create(ctx, label); err != nil {
		return nil, err
	}

	s.record(actor, projectID, "label.created", label.ID)
	return label, nil
}

func (s *LabelService) List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.Label, error) {
	if err := authorize(actor, authz.ActionViewProject, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.labels.ListByProject(ctx, projectID)
}

func (s *LabelService) Update(ctx context.Context, actor authz.Actor, projectID, labelID, name, color string) error {
	if err := authorize(actor, authz.ActionUpdateLabel, authz.Resource{}); err != nil {
		return err
	}
	if _, err := s.labels.FindByID(ctx, projectID, labelID); err != nil {
		return err
	}
	if err := s.labels.Update(ctx, projectID, labelID, name, color); err != nil {
		return err
	}
	s.record(actor, projectID, "label.updated", labelID)
	return nil
}

// Delete removes the label and detaches it from every term in the project.
func (s *LabelService) Delete(ctx context.Context, actor authz.Actor, projectID, labelID string) error {
	if err := authorize(actor, authz.ActionDeleteLabel, authz.Resource{}); err != nil {
		return err
	}
	if _, err := s.labels.FindByID(ctx, projectID, labelID); err != nil {
		return err
	}
	if err := s.labels.Delete(ctx, projectID, labelID); err != nil {
		return err
	}
	s.record(actor, projectID, "label.deleted", labelID)
	return nil
}

func (s *LabelService) record(actor authz.Actor, projectID, action, resource string) {
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
