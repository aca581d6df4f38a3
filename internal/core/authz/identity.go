package authz

// Identity is the raw authenticated identity extracted from a request's
// credential, before it is resolved against a target project. Exactly one of
// UserID and Key is set; the zero value is anonymous.
type Identity struct {
	UserID string
	Key    *KeyIdentity
}

// KeyIdentity is the stored shape of an API key credential: one
// (project, role) pair fixed at creation plus its revocation flag.
type KeyIdentity struct {
	ID        string
	ProjectID string
	Role      Role
	Revoked   bool
}

// Anonymous reports whether the identity carries no credential.
func (id Identity) Anonymous() bool {
	return id.UserID == "" && id.Key == nil
}

// IsAPIKey reports whether the identity came from an API key.
func (id Identity) IsAPIKey() bool {
	return id.Key != nil
}
