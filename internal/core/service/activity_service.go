package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the sink the dispatcher drains into.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists a single audit entry.
func (s *activityService) Record(ctx context.Context, e domain.ActivityEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := s.repo.Insert(ctx, &e); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	s.log.Debug().
		Str("project_id", e.ProjectID).
		Str("action", e.Action).
		Str("resource", e.Resource).
		Msg("activity recorded")
	return nil
}
