package domain

import "time"

// Translation is the value of a term in one locale. Unique per
// (term, locale); writes are upserts against that key so two concurrent
// writers never produce a duplicate row.
type Translation struct {
	TermID    string    `json:"term_id" bson:"term_id"`
	ProjectID string    `json:"project_id" bson:"project_id"`
	Locale    string    `json:"locale" bson:"locale"`
	Value     string    `json:"value" bson:"value"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
