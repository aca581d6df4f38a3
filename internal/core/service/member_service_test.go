package service

import (
	"context"
	"errors"
	"testing"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

type memberFixture struct {
	projects *stubProjectRepo
	members  *stubMembershipRepo
	users    *stubUserRepo
	svc      *MemberService
}

func newMemberFixture() *memberFixture {
	f := &memberFixture{
		projects: newStubProjectRepo(),
		members:  newStubMembershipRepo(),
		users:    newStubUserRepo(),
	}
	seedProject(f.projects, "p1", "owner1")
	f.users.byEmail["ana@example.com"] = &domain.User{ID: "u2", Name: "Ana", Email: "ana@example.com"}
	f.users.byEmail["owner@example.com"] = &domain.User{ID: "owner1", Name: "Owner", Email: "owner@example.com"}
	f.svc = NewMemberService(f.projects, f.members, f.users, nopRecorder{}, discardLogger)
	return f
}

func TestMemberService_Invite(t *testing.T) {
	f := newMemberFixture()

	m, err := f.svc.Invite(context.Background(), ownerActor(), "p1", "ana@example.com", domain.MemberRoleEditor, []string{"es_ES"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.UserID != "u2" || m.Role != domain.MemberRoleEditor {
		t.Errorf("unexpected membership: %+v", m)
	}
	if len(m.Locales) != 1 || m.Locales[0] != "es_ES" {
		t.Errorf("locale assignment not stored: %v", m.Locales)
	}
}

func TestMemberService_Invite_AdminJoinsUnrestricted(t *testing.T) {
	f := newMemberFixture()

	m, err := f.svc.Invite(context.Background(), ownerActor(), "p1", "ana@example.com", domain.MemberRoleAdmin, []string{"es_ES"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Locales != nil {
		t.Error("admin invitation must discard any locale assignment")
	}
}

func TestMemberService_Invite_UnknownUser(t *testing.T) {
	f := newMemberFixture()

	_, err := f.svc.Invite(context.Background(), ownerActor(), "p1", "ghost@example.com", domain.MemberRoleEditor, nil)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMemberService_Invite_InvalidRole(t *testing.T) {
	f := newMemberFixture()

	_, err := f.svc.Invite(context.Background(), ownerActor(), "p1", "ana@example.com", "owner", nil)
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("owner is not an assignable member role: expected ErrInvalidRole, got %v", err)
	}
}

func TestMemberService_Invite_OwnerRejected(t *testing.T) {
	f := newMemberFixture()

	_, err := f.svc.Invite(context.Background(), adminActor(), "p1", "owner@example.com", domain.MemberRoleAdmin, nil)
	if !errors.Is(err, domain.ErrOwnerImmutable) {
		t.Fatalf("expected ErrOwnerImmutable, got %v", err)
	}
}

func TestMemberService_Invite_Duplicate(t *testing.T) {
	f := newMemberFixture()

	if _, err := f.svc.Invite(context.Background(), ownerActor(), "p1", "ana@example.com", domain.MemberRoleEditor, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := f.svc.Invite(context.Background(), ownerActor(), "p1", "ana@example.com", domain.MemberRoleEditor, nil)
	if !errors.Is(err, domain.ErrMemberExists) {
		t.Fatalf("expected ErrMemberExists, got %v", err)
	}
}

func TestMemberService_Invite_EditorDenied(t *testing.T) {
	f := newMemberFixture()

	_, err := f.svc.Invite(context.Background(), editorActor(), "p1", "ana@example.com", domain.MemberRoleEditor, nil)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMemberService_PromotionClearsLocales(t *testing.T) {
	f := newMemberFixture()
	f.members.byKey[membershipKey("p1", "u2")] = &domain.ProjectUser{
		ProjectID: "p1", UserID: "u2", Role: domain.MemberRoleEditor, Locales: []string{"es_ES"},
	}

	if err := f.svc.Update(context.Background(), ownerActor(), "p1", "u2", domain.MemberRoleAdmin, []string{"es_ES"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := f.members.byKey[membershipKey("p1", "u2")]
	if stored.Role != domain.MemberRoleAdmin {
		t.Errorf("role: want admin, got %s", stored.Role)
	}
	if stored.Locales != nil {
		t.Error("promotion to admin must clear the stored locale restriction")
	}

	// The promoted member now acts unrestricted.
	actor := authz.Member("p1", "u2", memberRole(stored.Role), authz.RestrictedLocales(stored.Locales...))
	if !authz.CanActOnLocale(actor, "fr_FR") {
		t.Error("promoted admin must act on any locale")
	}
}

func TestMemberService_Update_OwnerRejected(t *testing.T) {
	f := newMemberFixture()

	err := f.svc.Update(context.Background(), adminActor(), "p1", "owner1", domain.MemberRoleEditor, nil)
	if !errors.Is(err, domain.ErrOwnerImmutable) {
		t.Fatalf("expected ErrOwnerImmutable, got %v", err)
	}
}

func TestMemberService_Remove(t *testing.T) {
	f := newMemberFixture()
	f.members.byKey[membershipKey("p1", "u2")] = &domain.ProjectUser{ProjectID: "p1", UserID: "u2", Role: domain.MemberRoleEditor}

	if err := f.svc.Remove(context.Background(), adminActor(), "p1", "u2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.members.byKey[membershipKey("p1", "u2")]; ok {
		t.Error("membership not removed")
	}

	if err := f.svc.Remove(context.Background(), adminActor(), "p1", "owner1"); !errors.Is(err, domain.ErrOwnerImmutable) {
		t.Fatalf("removing owner: expected ErrOwnerImmutable, got %v", err)
	}
}
