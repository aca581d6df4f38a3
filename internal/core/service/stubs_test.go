package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Shared in-memory stubs for all service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func ownerActor() authz.Actor { return authz.Owner("p1", "owner1") }
func adminActor() authz.Actor {
	return authz.Member("p1", "admin1", authz.RoleAdmin, authz.UnrestrictedLocales())
}
func editorActor(locales ...string) authz.Actor {
	return authz.Member("p1", "editor1", authz.RoleEditor, authz.RestrictedLocales(locales...))
}
func keyActor(role authz.Role) authz.Actor { return authz.APIKeyActor("p1", "key1", role, false) }

// nopRecorder discards audit entries.
type nopRecorder struct{}

func (nopRecorder) Record(domain.ActivityEntry) {}

// memRecorder collects audit entries for assertions.
type memRecorder struct {
	mu      sync.Mutex
	entries []domain.ActivityEntry
}

func (r *memRecorder) Record(e domain.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *memRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Action
	}
	return out
}

// --- projects ---

type stubProjectRepo struct {
	byID map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) ListForUser(_ context.Context, userID string) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.byID {
		if p.OwnerID == userID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) UpdateName(_ context.Context, id, name string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.Name = name
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

// --- memberships ---

type stubMembershipRepo struct {
	byKey map[string]*domain.ProjectUser
}

func newStubMembershipRepo() *stubMembershipRepo {
	return &stubMembershipRepo{byKey: make(map[string]*domain.ProjectUser)}
}

func membershipKey(projectID, userID string) string { return projectID + "/" + userID }

func (r *stubMembershipRepo) Create(_ context.Context, m *domain.ProjectUser) error {
	k := membershipKey(m.ProjectID, m.UserID)
	if _, ok := r.byKey[k]; ok {
		return domain.ErrMemberExists
	}
	clone := *m
	r.byKey[k] = &clone
	return nil
}

func (r *stubMembershipRepo) Find(_ context.Context, projectID, userID string) (*domain.ProjectUser, error) {
	m, ok := r.byKey[membershipKey(projectID, userID)]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMembershipRepo) ListByProject(_ context.Context, projectID string) ([]*domain.ProjectUser, error) {
	var out []*domain.ProjectUser
	for _, m := range r.byKey {
		if m.ProjectID == projectID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMembershipRepo) UpdateRole(_ context.Context, projectID, userID, role string, locales []string) error {
	m, ok := r.byKey[membershipKey(projectID, userID)]
	if !ok {
		return domain.ErrMemberNotFound
	}
	m.Role = role
	m.Locales = locales
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubMembershipRepo) Delete(_ context.Context, projectID, userID string) error {
	k := membershipKey(projectID, userID)
	if _, ok := r.byKey[k]; !ok {
		return domain.ErrMemberNotFound
	}
	delete(r.byKey, k)
	return nil
}

// --- terms ---

type stubTermRepo struct {
	byID map[string]*domain.Term
}

func newStubTermRepo() *stubTermRepo {
	return &stubTermRepo{byID: make(map[string]*domain.Term)}
}

func (r *stubTermRepo) Create(_ context.Context, t *domain.Term) error {
	for _, existing := range r.byID {
		if existing.ProjectID == t.ProjectID && existing.Value == t.Value {
			return domain.ErrTermExists
		}
	}
	clone := *t
	r.byID[t.ID] = &clone
	return nil
}

func (r *stubTermRepo) FindByID(_ context.Context, projectID, id string) (*domain.Term, error) {
	t, ok := r.byID[id]
	if !ok || t.ProjectID != projectID {
		return nil, domain.ErrTermNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTermRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Term, error) {
	var out []*domain.Term
	for _, t := range r.byID {
		if t.ProjectID == projectID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTermRepo) UpdateValue(_ context.Context, projectID, id, value string) error {
	t, ok := r.byID[id]
	if !ok || t.ProjectID != projectID {
		return domain.ErrTermNotFound
	}
	t.Value = value
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubTermRepo) Delete(_ context.Context, projectID, id string) error {
	t, ok := r.byID[id]
	if !ok || t.ProjectID != projectID {
		return domain.ErrTermNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubTermRepo) SetLocked(_ context.Context, projectID, id string, locked bool) error {
	t, ok := r.byID[id]
	if !ok || t.ProjectID != projectID {
		return domain.ErrTermNotFound
	}
	t.Locked = locked
	return nil
}

func (r *stubTermRepo) SetLockedAll(_ context.Context, projectID string, locked bool) (int64, error) {
	var changed int64
	for _, t := range r.byID {
		if t.ProjectID == projectID && t.Locked != locked {
			t.Locked = locked
			changed++
		}
	}
	return changed, nil
}

func (r *stubTermRepo) SetLabels(_ context.Context, projectID, id string, labelIDs []string) error {
	t, ok := r.byID[id]
	if !ok || t.ProjectID != projectID {
		return domain.ErrTermNotFound
	}
	t.LabelIDs = labelIDs
	return nil
}

// --- locales ---

type stubLocaleRepo struct {
	codes map[string]map[string]bool // projectID -> code set
}

func newStubLocaleRepo() *stubLocaleRepo {
	return &stubLocaleRepo{codes: make(map[string]map[string]bool)}
}

func (r *stubLocaleRepo) Add(_ context.Context, l *domain.Locale) error {
	set, ok := r.codes[l.ProjectID]
	if !ok {
		set = make(map[string]bool)
		r.codes[l.ProjectID] = set
	}
	if set[l.Code] {
		return domain.ErrLocaleExists
	}
	set[l.Code] = true
	return nil
}

func (r *stubLocaleRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Locale, error) {
	var out []*domain.Locale
	for code := range r.codes[projectID] {
		out = append(out, &domain.Locale{ProjectID: projectID, Code: code})
	}
	return out, nil
}

func (r *stubLocaleRepo) Exists(_ context.Context, projectID, code string) (bool, error) {
	return r.codes[projectID][code], nil
}

func (r *stubLocaleRepo) Delete(_ context.Context, projectID, code string) error {
	if !r.codes[projectID][code] {
		return domain.ErrLocaleNotFound
	}
	delete(r.codes[projectID], code)
	return nil
}

// --- labels ---

type stubLabelRepo struct {
	byID map[string]*domain.Label
}

func newStubLabelRepo() *stubLabelRepo {
	return &stubLabelRepo{byID: make(map[string]*domain.Label)}
}

func (r *stubLabelRepo) Create(_ context.Context, l *domain.Label) error {
	for _, existing := range r.byID {
		if existing.ProjectID == l.ProjectID && existing.Name == l.Name {
			return domain.ErrLabelExists
		}
	}
	clone := *l
	r.byID[l.ID] = &clone
	return nil
}

func (r *stubLabelRepo) FindByID(_ context.Context, projectID, id string) (*domain.Label, error) {
	l, ok := r.byID[id]
	if !ok || l.ProjectID != projectID {
		return nil, domain.ErrLabelNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLabelRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Label, error) {
	var out []*domain.Label
	for _, l := range r.byID {
		if l.ProjectID == projectID {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLabelRepo) Update(_ context.Context, projectID, id, name, color string) error {
	l, ok := r.byID[id]
	if !ok || l.ProjectID != projectID {
		return domain.ErrLabelNotFound
	}
	l.Name = name
	l.Color = color
	return nil
}

func (r *stubLabelRepo) Delete(_ context.Context, projectID, id string) error {
	l, ok := r.byID[id]
	if !ok || l.ProjectID != projectID {
		return domain.ErrLabelNotFound
	}
	delete(r.byID, id)
	return nil
}

// --- translations ---

type stubTranslationRepo struct {
	rows         map[string]*domain.Translation // termID/locale
	conflictOnce bool                           // next Upsert fails with a creation race
}

func newStubTranslationRepo() *stubTranslationRepo {
	return &stubTranslationRepo{rows: make(map[string]*domain.Translation)}
}

func (r *stubTranslationRepo) Upsert(_ context.Context, tr *domain.Translation) (bool, error) {
	if r.conflictOnce {
		r.conflictOnce = false
		return false, domain.ErrTranslationConflict
	}
	k := tr.TermID + "/" + tr.Locale
	_, existed := r.rows[k]
	clone := *tr
	r.rows[k] = &clone
	return !existed, nil
}

func (r *stubTranslationRepo) Find(_ context.Context, termID, locale string) (*domain.Translation, error) {
	tr, ok := r.rows[termID+"/"+locale]
	if !ok {
		return nil, domain.ErrTranslationNotFound
	}
	clone := *tr
	return &clone, nil
}

func (r *stubTranslationRepo) ListByLocale(_ context.Context, projectID, locale string) ([]*domain.Translation, error) {
	var out []*domain.Translation
	for _, tr := range r.rows {
		if tr.ProjectID == projectID && tr.Locale == locale {
			clone := *tr
			out = append(out, &clone)
		}
	}
	return out, nil
}

// --- users ---

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *u
	r.byEmail[u.Email] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// --- api keys ---

type stubKeyRepo struct {
	byID map[string]*domain.APIKey
}

func newStubKeyRepo() *stubKeyRepo {
	return &stubKeyRepo{byID: make(map[string]*domain.APIKey)}
}

func (r *stubKeyRepo) Create(_ context.Context, k *domain.APIKey) error {
	clone := *k
	r.byID[k.ID] = &clone
	return nil
}

func (r *stubKeyRepo) FindByID(_ context.Context, projectID, id string) (*domain.APIKey, error) {
	k, ok := r.byID[id]
	if !ok || k.ProjectID != projectID {
		return nil, domain.ErrAPIKeyNotFound
	}
	clone := *k
	return &clone, nil
}

func (r *stubKeyRepo) FindByHash(_ context.Context, tokenHash string) (*domain.APIKey, error) {
	for _, k := range r.byID {
		if k.TokenHash == tokenHash {
			clone := *k
			return &clone, nil
		}
	}
	return nil, domain.ErrAPIKeyNotFound
}

func (r *stubKeyRepo) ListByProject(_ context.Context, projectID string) ([]*domain.APIKey, error) {
	var out []*domain.APIKey
	for _, k := range r.byID {
		if k.ProjectID == projectID {
			clone := *k
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubKeyRepo) Revoke(_ context.Context, projectID, id string, at time.Time) error {
	k, ok := r.byID[id]
	if !ok || k.ProjectID != projectID {
		return domain.ErrAPIKeyNotFound
	}
	k.RevokedAt = &at
	return nil
}

// stubKeyCache records Forget calls.
type stubKeyCache struct {
	forgotten []string
}

func (c *stubKeyCache) Forget(_ context.Context, tokenHash string) error {
	c.forgotten = append(c.forgotten, tokenHash)
	return nil
}

// --- activity ---

type stubActivityRepo struct {
	entries []*domain.ActivityEntry
}

func (r *stubActivityRepo) Insert(_ context.Context, e *domain.ActivityEntry) error {
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubActivityRepo) ListByProject(_ context.Context, projectID string, limit int) ([]*domain.ActivityEntry, error) {
	var out []*domain.ActivityEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].ProjectID == projectID {
			clone := *r.entries[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}
