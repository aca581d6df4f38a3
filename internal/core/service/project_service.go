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

// ProjectService handles project lifecycle and the activity feed.
type ProjectService struct {
	projects ports.ProjectRepository
	activity ports.ActivityRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, activity ports.ActivityRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, activity: activity, recorder: recorder, logger: logger}
}

// Create makes userID the owner of a new project. Ownership is exclusive
// and fixed here; no later operation reassigns it.
func (s *ProjectService) Create(ctx context.Context, userID, name string) (*domain.Project, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("owner_id", userID).Msg("project created")
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: project.ID,
		ActorKind: "user",
		ActorID:   userID,
		Action:    "project.created",
		Resource:  project.ID,
		CreatedAt: now,
	})

	return project, nil
}

// List returns every project the user owns or belongs to.
func (s *ProjectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.projects.ListForUser(ctx, userID)
}

func (s *ProjectService) Get(ctx context.Context, actor authz.Actor, projectID string) (*domain.Project, error) {
	if err := authorize(actor, authz.ActionViewProject, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.projects.FindByID(ctx, projectID)
}

func (s *ProjectService) Rename(ctx context.Context, actor authz.Actor, projectID, name string) error {
	if err := authorize(actor, authz.ActionManageProjectSettings, authz.Resource{}); err != nil {
		return err
	}
	if err := s.projects.UpdateName(ctx, projectID, name); err != nil {
		return err
	}

	kind, id := actorRef(actor)
	s.recorder.Record(domain.ActivityEntry{
		ProjectID: projectID,
		ActorKind: kind,
		ActorID:   id,
		Action:    "project.renamed",
		Resource:  projectID,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Delete removes the project and everything under it. Owner-only; the
// policy engine denies every other actor including admin members and admin
// API keys.
func (s *ProjectService) Delete(ctx context.Context, actor authz.Actor, projectID string) error {
	if err := authorize(actor, authz.ActionDeleteProject, authz.Resource{}); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", projectID).Msg("project deleted")
	return nil
}

// Activity returns the most recent audit entries for the project.
func (s *ProjectService) Activity(ctx context.Context, actor authz.Actor, projectID string, limit int) ([]*domain.ActivityEntry, error) {
	if err := authorize(actor, authz.ActionViewProject, authz.Resource{}); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.activity.ListByProject(ctx, projectID, limit)
}
