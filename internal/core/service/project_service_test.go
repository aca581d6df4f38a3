package service

import (
	"context"
	"errors"
	"testing"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

func newProjectService(projects *stubProjectRepo, activity *stubActivityRepo) *ProjectService {
	if activity == nil {
		activity = &stubActivityRepo{}
	}
	return NewProjectService(projects, activity, nopRecorder{}, discardLogger)
}

func TestProjectService_Create_SetsOwner(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newProjectService(projects, nil)

	p, err := svc.Create(context.Background(), "u1", "website")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.OwnerID != "u1" {
		t.Errorf("owner: want u1, got %s", p.OwnerID)
	}
	if p.ID == "" {
		t.Error("project id must be assigned")
	}
}

func TestProjectService_Create_RequiresSession(t *testing.T) {
	svc := newProjectService(newStubProjectRepo(), nil)

	if _, err := svc.Create(context.Background(), "", "website"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestProjectService_Delete_OwnerOnly(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "p1", "owner1")
	svc := newProjectService(projects, nil)

	// The freshly created owner may delete immediately; an invited admin,
	// an admin key, or editors may not.
	for name, actor := range map[string]authz.Actor{
		"admin member": adminActor(),
		"admin key":    keyActor(authz.RoleAdmin),
		"editor":       editorActor(),
	} {
		if err := svc.Delete(context.Background(), actor, "p1"); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s delete: expected ErrForbidden, got %v", name, err)
		}
	}

	if err := svc.Delete(context.Background(), ownerActor(), "p1"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(projects.byID) != 0 {
		t.Error("project not deleted")
	}
}

func TestProjectService_Get_NoRelationshipReadsAsNotFound(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "p1", "owner1")
	svc := newProjectService(projects, nil)

	_, err := svc.Get(context.Background(), authz.NoRelationship("p1"), "p1")
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound (not forbidden), got %v", err)
	}
}

func TestProjectService_Activity(t *testing.T) {
	projects := newStubProjectRepo()
	activity := &stubActivityRepo{}
	seedProject(projects, "p1", "owner1")
	for _, action := range []string{"term.created", "term.locked", "translation.updated"} {
		_ = activity.Insert(context.Background(), &domain.ActivityEntry{ProjectID: "p1", Action: action})
	}
	svc := newProjectService(projects, activity)

	entries, err := svc.Activity(context.Background(), editorActor(), "p1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Action != "translation.updated" {
		t.Errorf("expected newest entry first, got %s", entries[0].Action)
	}
}
