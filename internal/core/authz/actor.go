// Package authz is the single authorization decision point for the system.
// Every mutating and most read operations are checked through Decide, a pure
// function over an immutable Actor snapshot, an Action, and the
// policy-relevant state of the target resource. Nothing in this package
// performs I/O; actor construction from credentials and lookups lives in the
// service layer.
package authz

// Role is the closed set of authority levels, highest to lowest:
// owner > admin > editor > read-only.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleReadOnly Role = "read-only"
)

// ActorKind tags the Actor variant.
type ActorKind int

const (
	// ActorAnonymous carries no valid credential.
	ActorAnonymous ActorKind = iota
	// ActorNoRelationship is authenticated but has no tie to the project.
	// Denied as not-found so project ids cannot be enumerated.
	ActorNoRelationship
	// ActorOwner is the user who created the project.
	ActorOwner
	// ActorMember is a human collaborator with an admin or editor role.
	ActorMember
	// ActorAPIKey is a key credential scoped to the project.
	ActorAPIKey
	// ActorForeignKey is a valid key presented against a different project
	// than the one it is scoped to. Denied outright, never re-scoped.
	ActorForeignKey
)

// Actor is the canonical identity-plus-membership snapshot built once per
// request. It is immutable; Decide never modifies it.
type Actor struct {
	Kind      ActorKind
	ProjectID string
	UserID    string
	KeyID     string
	Role      Role
	Revoked   bool
	Locales   LocaleSet
}

// Anonymous returns the actor for requests without a valid credential.
func Anonymous() Actor {
	return Actor{Kind: ActorAnonymous}
}

// NoRelationship returns the actor for an authenticated user with no
// ownership or membership tie to the project.
func NoRelationship(projectID string) Actor {
	return Actor{Kind: ActorNoRelationship, ProjectID: projectID}
}

// Owner returns the project owner's actor.
func Owner(projectID, userID string) Actor {
	return Actor{Kind: ActorOwner, ProjectID: projectID, UserID: userID, Role: RoleOwner, Locales: UnrestrictedLocales()}
}

// Member returns a membership actor. Admins are always locale-unrestricted
// regardless of the locales argument.
func Member(projectID, userID string, role Role, locales LocaleSet) Actor {
	if role == RoleAdmin {
		locales = UnrestrictedLocales()
	}
	return Actor{Kind: ActorMember, ProjectID: projectID, UserID: userID, Role: role, Locales: locales}
}

// APIKeyActor returns an API-key actor scoped to projectID. API keys have no
// locale restriction concept: the key is either usable for the whole project
// or not at all.
func APIKeyActor(projectID, keyID string, role Role, revoked bool) Actor {
	return Actor{Kind: ActorAPIKey, ProjectID: projectID, KeyID: keyID, Role: role, Revoked: revoked, Locales: UnrestrictedLocales()}
}

// ForeignKey returns the actor for a key presented against a project it is
// not scoped to.
func ForeignKey(keyID string) Actor {
	return Actor{Kind: ActorForeignKey, KeyID: keyID}
}
