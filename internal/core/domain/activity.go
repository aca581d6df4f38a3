package domain

import "time"

// ActivityEntry is one line in a project's audit trail. Entries are written
// asynchronously via the activity dispatcher; per-project ordering is
// preserved by sharding on ProjectID.
type ActivityEntry struct {
	ID        string    `json:"id,omitempty" bson:"_id"`
	ProjectID string    `json:"project_id" bson:"project_id"`
	ActorKind string    `json:"actor_kind" bson:"actor_kind"` // "user" or "api_key"
	ActorID   string    `json:"actor_id" bson:"actor_id"`
	Action    string    `json:"action" bson:"action"`     // e.g. "term.locked", "translation.updated"
	Resource  string    `json:"resource" bson:"resource"` // id or code of the affected resource
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
