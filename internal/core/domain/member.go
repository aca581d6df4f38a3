package domain

import "time"

// Assignable membership roles. Ownership is not a membership role: the owner
// is derived from Project.OwnerID and never appears in a membership row.
const (
	MemberRoleAdmin  = "admin"
	MemberRoleEditor = "editor"
)

// ValidMemberRole reports whether role is assignable to a membership.
func ValidMemberRole(role string) bool {
	return role == MemberRoleAdmin || role == MemberRoleEditor
}

// ProjectUser is a human collaborator on a project.
//
// Locales is only meaningful for editors: the subset of locale codes the
// editor may write translations for, with empty meaning unrestricted.
// Admins are always unrestricted; promoting an editor to admin must clear
// any stored restriction.
type ProjectUser struct {
	ProjectID string    `json:"project_id" bson:"project_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Role      string    `json:"role" bson:"role"`
	Locales   []string  `json:"locales,omitempty" bson:"locales,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
