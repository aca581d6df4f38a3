package service

import (
	"context"
	"errors"
	"testing"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

func newTermService(terms *stubTermRepo, labels *stubLabelRepo) *TermService {
	if labels == nil {
		labels = newStubLabelRepo()
	}
	return NewTermService(terms, labels, nopRecorder{}, discardLogger)
}

func TestTermService_Create_StartsUnlocked(t *testing.T) {
	terms := newStubTermRepo()
	svc := newTermService(terms, nil)

	term, err := svc.Create(context.Background(), adminActor(), "p1", "checkout.title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if term.Locked {
		t.Error("new terms must start unlocked")
	}
	if term.ProjectID != "p1" {
		t.Errorf("project id: want p1, got %s", term.ProjectID)
	}
}

func TestTermService_Create_DuplicateValue(t *testing.T) {
	terms := newStubTermRepo()
	svc := newTermService(terms, nil)

	if _, err := svc.Create(context.Background(), adminActor(), "p1", "checkout.title"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := svc.Create(context.Background(), adminActor(), "p1", "checkout.title")
	if !errors.Is(err, domain.ErrTermExists) {
		t.Fatalf("expected ErrTermExists, got %v", err)
	}
}

func TestTermService_Create_EditorDenied(t *testing.T) {
	svc := newTermService(newStubTermRepo(), nil)

	_, err := svc.Create(context.Background(), editorActor(), "p1", "checkout.title")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTermService_Update_LockedTermRequiresAdmin(t *testing.T) {
	terms := newStubTermRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "checkout.title", Locked: true}
	svc := newTermService(terms, nil)

	if err := svc.Update(context.Background(), adminActor(), "p1", "t1", "checkout.heading"); err != nil {
		t.Fatalf("admin must update a locked term: %v", err)
	}
	if err := svc.Update(context.Background(), editorActor(), "p1", "t1", "x"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("editor on locked term: expected ErrForbidden, got %v", err)
	}
}

func TestTermService_SetLocked_EditorDeniedRegardlessOfState(t *testing.T) {
	terms := newStubTermRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "v"}
	svc := newTermService(terms, nil)

	for _, locked := range []bool{true, false} {
		err := svc.SetLocked(context.Background(), editorActor(), "p1", "t1", locked)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("editor lock toggle (locked=%v): expected ErrForbidden, got %v", locked, err)
		}
	}
}

func TestTermService_SetLocked_Idempotent(t *testing.T) {
	terms := newStubTermRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "v", Locked: true}
	svc := newTermService(terms, nil)

	// Locking an already-locked term is an allowed no-op.
	if err := svc.SetLocked(context.Background(), adminActor(), "p1", "t1", true); err != nil {
		t.Fatalf("re-lock must be a no-op, got %v", err)
	}
	if !terms.byID["t1"].Locked {
		t.Error("term must stay locked")
	}
}

func TestTermService_SetLocked_NotFound(t *testing.T) {
	svc := newTermService(newStubTermRepo(), nil)
	err := svc.SetLocked(context.Background(), adminActor(), "p1", "ghost", true)
	if !errors.Is(err, domain.ErrTermNotFound) {
		t.Fatalf("expected ErrTermNotFound, got %v", err)
	}
}

func TestTermService_SetLockedAll(t *testing.T) {
	terms := newStubTermRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "a"}
	terms.byID["t2"] = &domain.Term{ID: "t2", ProjectID: "p1", Value: "b", Locked: true}
	terms.byID["t3"] = &domain.Term{ID: "t3", ProjectID: "other", Value: "c"}
	svc := newTermService(terms, nil)

	changed, err := svc.SetLockedAll(context.Background(), adminActor(), "p1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 1 {
		t.Errorf("expected 1 term changed (t2 already locked), got %d", changed)
	}
	if !terms.byID["t1"].Locked || !terms.byID["t2"].Locked {
		t.Error("all project terms must be locked")
	}
	if terms.byID["t3"].Locked {
		t.Error("bulk lock must not touch other projects")
	}

	if _, err := svc.SetLockedAll(context.Background(), editorActor(), "p1", false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("editor bulk unlock: expected ErrForbidden, got %v", err)
	}
}

func TestTermService_SetLabels(t *testing.T) {
	terms := newStubTermRepo()
	labels := newStubLabelRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "v"}
	labels.byID["l1"] = &domain.Label{ID: "l1", ProjectID: "p1", Name: "reviewed"}
	svc := newTermService(terms, labels)

	// Editors may label unlocked terms.
	if err := svc.SetLabels(context.Background(), editorActor(), "p1", "t1", []string{"l1"}); err != nil {
		t.Fatalf("editor labeling unlocked term: %v", err)
	}
	if len(terms.byID["t1"].LabelIDs) != 1 {
		t.Error("labels not stored")
	}

	// Unknown label is 404, not silently dropped.
	err := svc.SetLabels(context.Background(), adminActor(), "p1", "t1", []string{"ghost"})
	if !errors.Is(err, domain.ErrLabelNotFound) {
		t.Fatalf("expected ErrLabelNotFound, got %v", err)
	}
}

func TestTermService_SetLabels_LockedTerm(t *testing.T) {
	terms := newStubTermRepo()
	labels := newStubLabelRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "v", Locked: true}
	labels.byID["l1"] = &domain.Label{ID: "l1", ProjectID: "p1", Name: "reviewed"}
	svc := newTermService(terms, labels)

	if err := svc.SetLabels(context.Background(), editorActor(), "p1", "t1", []string{"l1"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("editor labeling locked term: expected ErrForbidden, got %v", err)
	}
	if err := svc.SetLabels(context.Background(), adminActor(), "p1", "t1", []string{"l1"}); err != nil {
		t.Fatalf("admin labeling locked term: %v", err)
	}
}

func TestTermService_MutationDenialIndependentOfExistence(t *testing.T) {
	terms := newStubTermRepo()
	terms.byID["t1"] = &domain.Term{ID: "t1", ProjectID: "p1", Value: "v"}
	svc := newTermService(terms, nil)
	ctx := context.Background()

	ops := []struct {
		name string
		call func(actor authz.Actor, termID string) error
	}{
		{"update", func(a authz.Actor, id string) error { return svc.Update(ctx, a, "p1", id, "x") }},
		{"delete", func(a authz.Actor, id string) error { return svc.Delete(ctx, a, "p1", id) }},
		{"lock", func(a authz.Actor, id string) error { return svc.SetLocked(ctx, a, "p1", id, true) }},
		{"set labels", func(a authz.Actor, id string) error { return svc.SetLabels(ctx, a, "p1", id, nil) }},
	}
	actors := []struct {
		name  string
		actor authz.Actor
		want  error
	}{
		{"anonymous", authz.Anonymous(), domain.ErrNotAuthenticated},
		{"no relationship", authz.NoRelationship("p1"), domain.ErrProjectNotFound},
		{"foreign key", authz.ForeignKey("key9"), domain.ErrForbidden},
	}

	// A denied caller must see the same error whether or not the term
	// exists; anything else leaks term existence.
	for _, op := range ops {
		for _, tc := range actors {
			for _, termID := range []string{"t1", "ghost"} {
				if err := op.call(tc.actor, termID); !errors.Is(err, tc.want) {
					t.Errorf("%s %s on %q: expected %v, got %v", tc.name, op.name, termID, tc.want, err)
				}
			}
		}
	}
}

func TestTermService_RecordsActivity(t *testing.T) {
	terms := newStubTermRepo()
	rec := &memRecorder{}
	svc := NewTermService(terms, newStubLabelRepo(), rec, discardLogger)

	term, err := svc.Create(context.Background(), ownerActor(), "p1", "v")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.SetLocked(context.Background(), ownerActor(), "p1", term.ID, true); err != nil {
		t.Fatalf("lock: %v", err)
	}

	actions := rec.actions()
	if len(actions) != 2 || actions[0] != "term.created" || actions[1] != "term.locked" {
		t.Errorf("unexpected activity trail: %v", actions)
	}
}
