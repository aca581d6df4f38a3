package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// LocaleService manages a project's target locales. Individual term lock
// state never constrains locale management.
type LocaleService struct {
	locales  ports.LocaleRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewLocaleService(locales ports.LocaleRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *LocaleService {
	return &LocaleService{locales: locales, recorder: recorder, logger: logger}
}

func (s *LocaleService) Add(ctx context.Context, actor authz.Actor, projectID, code string) (*domain.Locale, error) {
	if err := authorize(actor, authz.ActionAddLocale, authz.Resource{}); err != nil {
		return nil, err
	}

	locale := &domain.Locale{
		ProjectID: projectID,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.locales.Add(ctx, locale); err != nil {
		return nil, err
	}

	kind, id := actorRef(actor)
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: projectID,
		ActorKind: kind,
		ActorID:   id,
		Action:    "locale.added",
		Resource:  code,
		CreatedAt: locale.CreatedAt,
	})
	return locale, nil
}

func (s *LocaleService) List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.Locale, error) {
	if err := authorize(actor, authz.ActionViewProject, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.locales.ListByProject(ctx, projectID)
}

// Delete removes the locale; its translations go with it.
func (s *LocaleService) Delete(ctx context.Context, actor authz.Actor, projectID, code string) error {
	if err := authorize(actor, authz.ActionDeleteLocale, authz.Resource{}); err != nil {
		return err
	}

	ok, err := s.locales.Exists(ctx, projectID, code)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrLocaleNotFound
	}

	if err := s.locales.Delete(ctx, projectID, code); err != nil {
		return err
	}

	kind, id := actorRef(actor)
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: projectID,
		ActorKind: kind,
		ActorID:   id,
		Action:    "locale.deleted",
		Resource:  code,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}
