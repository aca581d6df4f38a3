package domain

import "time"

// TermLockState is the lock lifecycle of a term.
type TermLockState string

const (
	TermUnlocked TermLockState = "unlocked"
	TermLocked   TermLockState = "locked"
)

// The lock cycle has no terminal state: unlocked ⇄ locked, and re-applying
// the current state is a no-op. Bulk lock/unlock relies on that idempotence.
// Toggles are last-write-wins; no compare-and-swap on the prior state.
func (s TermLockState) Locked() bool {
	return s == TermLocked
}

// LockStateFor maps the persisted flag to a lock state.
func LockStateFor(locked bool) TermLockState {
	if locked {
		return TermLocked
	}
	return TermUnlocked
}

// Term is a translatable key within a project. Value is unique per project.
// Locked is the one attribute mutated by its own dedicated actions: while
// true, content changes (value, labels, translations) require an owner or
// admin-level actor regardless of what the base role table allows.
type Term struct {
	ID        string    `json:"id" bson:"_id"`
	ProjectID string    `json:"project_id" bson:"project_id"`
	Value     string    `json:"value" bson:"value"`
	Locked    bool      `json:"locked" bson:"locked"`
	LabelIDs  []string  `json:"label_ids,omitempty" bson:"label_ids,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// LockState returns the term's current lock state.
func (t *Term) LockState() TermLockState {
	return LockStateFor(t.Locked)
}
