package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// API key roles as surfaced to clients.
const (
	KeyRoleReadOnly = "read-only"
	KeyRoleEditor   = "editor"
	KeyRoleAdmin    = "admin"
)

// ValidKeyRole reports whether role is assignable to an API key.
func ValidKeyRole(role string) bool {
	switch role {
	case KeyRoleReadOnly, KeyRoleEditor, KeyRoleAdmin:
		return true
	}
	return false
}

// APIKeyPrefix marks bearer tokens as API keys rather than session JWTs.
const APIKeyPrefix = "lk_"

// APIKey is a credential permanently scoped to a single project with a role
// fixed at creation. The raw token is shown once at creation and only its
// SHA-256 hex digest is stored. A non-nil RevokedAt makes the key behave as
// an anonymous credential for every request.
type APIKey struct {
	ID        string     `json:"id" bson:"_id"`
	ProjectID string     `json:"project_id" bson:"project_id"`
	Name      string     `json:"name" bson:"name"`
	Role      string     `json:"role" bson:"role"`
	TokenHash string     `json:"-" bson:"token_hash"`
	RevokedAt *time.Time `json:"revoked_at,omitempty" bson:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// Revoked reports whether the key has been revoked.
func (k *APIKey) Revoked() bool {
	return k.RevokedAt != nil
}

// IsAPIKeyToken reports whether a bearer token is an API key credential.
func IsAPIKeyToken(token string) bool {
	return strings.HasPrefix(token, APIKeyPrefix)
}

// HashAPIKeyToken returns the stored digest for a raw token.
func HashAPIKeyToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
