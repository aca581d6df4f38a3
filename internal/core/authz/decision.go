package authz

// Reason classifies a denial so callers can map it to the right transport
// response without parsing human-readable text.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotAuthenticated Reason = "not_authenticated"
	// ReasonNotFound hides the target's existence from actors with no
	// relationship to the project (maps to 404, never 403).
	ReasonNotFound         Reason = "not_found"
	ReasonInsufficientRole Reason = "insufficient_role"
	ReasonOwnerOnly        Reason = "owner_only"
	ReasonTermLocked       Reason = "term_locked"
	ReasonLocaleScope      Reason = "locale_not_assigned"
	ReasonKeyProject       Reason = "key_project_mismatch"
)

// Decision is the result of one policy evaluation. Detail is a single
// sentence safe to return to the caller: it never names other users' roles
// or other projects.
type Decision struct {
	Allowed bool
	Reason  Reason
	Detail  string
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with its classification and reason text.
func Deny(reason Reason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail}
}
