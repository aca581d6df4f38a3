package domain

import "time"

// Project is the tenant boundary. OwnerID identifies the single user with
// supreme authority over the project; ownership is set at creation and is
// never reassigned or revoked.
type Project struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Locale is a target language added to a project, identified by its code
// (e.g. "en_US", "de_DE"). Unique per (project, code).
type Locale struct {
	ProjectID string    `json:"project_id" bson:"project_id"`
	Code      string    `json:"code" bson:"code"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Label is a project-scoped tag that can be attached to terms.
// Unique per (project, name).
type Label struct {
	ID        string    `json:"id" bson:"_id"`
	ProjectID string    `json:"project_id" bson:"project_id"`
	Name      string    `json:"name" bson:"name"`
	Color     string    `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
