package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// MemberService manages human memberships. The owner never has a membership
// row and is immutable through this surface: inviting, updating, or removing
// the owning user is rejected.
type MemberService struct {
	projects ports.ProjectRepository
	members  ports.MembershipRepository
	users    ports.UserRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewMemberService(projects ports.ProjectRepository, members ports.MembershipRepository, users ports.UserRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *MemberService {
	return &MemberService{projects: projects, members: members, users: users, recorder: recorder, logger: logger}
}

func (s *MemberService) List(ctx context.Context, actor authz.Actor, projectID string) ([]*domain.ProjectUser, error) {
	if err := authorize(actor, authz.ActionListMembers, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.members.ListByProject(ctx, projectID)
}

// Invite adds an existing user to the project by email. Admins join
// unrestricted; editor locale assignments are stored as given, with empty
// meaning unrestricted.
func (s *MemberService) Invite(ctx context.Context, actor authz.Actor, projectID, email, role string, locales []string) (*domain.ProjectUser, error) {
	if err := authorize(actor, authz.ActionInviteMember, authz.Resource{}); err != nil {
		return nil, err
	}
	if !domain.ValidMemberRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID == user.ID {
		return nil, domain.ErrOwnerImmutable
	}

	if role == domain.MemberRoleAdmin {
		locales = nil
	}

	now := time.Now().UTC()
	member := &domain.ProjectUser{
		ProjectID: projectID,
		UserID:    user.ID,
		Role:      role,
		Locales:   locales,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	s.record(actor, projectID, "member.invited", user.ID)
	return member, nil
}

// Update changes a member's role or locale assignment. Promoting to admin
// clears any stored locale restriction in the same write.
func (s *MemberService) Update(ctx context.Context, actor authz.Actor, projectID, userID, role string, locales []string) error {
	if err := authorize(actor, authz.ActionUpdateMember, authz.Resource{}); err != nil {
		return err
	}
	if !domain.ValidMemberRole(role) {
		return domain.ErrInvalidRole
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID == userID {
		return domain.ErrOwnerImmutable
	}

	if _, err := s.members.Find(ctx, projectID, userID); err != nil {
		return err
	}

	if role == domain.MemberRoleAdmin {
		locales = nil
	}
	if err := s.members.UpdateRole(ctx, projectID, userID, role, locales); err != nil {
		return err
	}

	s.record(actor, projectID, "member.updated", userID)
	return nil
}

func (s *MemberService) Remove(ctx context.Context, actor authz.Actor, projectID, userID string) error {
	if err := authorize(actor, authz.ActionRemoveMember, authz.Resource{}); err != nil {
		return err
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID == userID {
		return domain.ErrOwnerImmutable
	}

	if err := s.members.Delete(ctx, projectID, userID); err != nil {
		return err
	}

	s.record(actor, projectID, "member.removed", userID)
	return nil
}

func (s *MemberService) record(actor authz.Actor, projectID, action, resource string) {
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
