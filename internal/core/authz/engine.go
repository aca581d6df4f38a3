package authz

// Resource is the policy-relevant snapshot of an action's target, captured
// once by the caller. TermLocked must be the same snapshot used for the
// write the decision guards; re-reading lock state after the decision would
// reopen a check-then-act gap.
type Resource struct {
	// TermLocked is the lock flag of the targeted term, when the action
	// targets one.
	TermLocked bool
	// Locale is the locale code a translation write targets.
	Locale string
}

// Decide evaluates whether actor may perform action on the resource
// described by res. It is pure and total: every reachable actor state maps
// to a decision, never a panic or an error. Safe for unbounded concurrent
// use.
func Decide(actor Actor, action Action, res Resource) Decision {
	switch actor.Kind {
	case ActorOwner:
		// Owner supremacy. Evaluated first so a stale membership row for
		// the owning user can never shadow ownership.
		return Allow()
	case ActorMember:
		return decideMember(actor, action, res)
	case ActorAPIKey:
		return decideAPIKey(actor, action, res)
	case ActorNoRelationship:
		return Deny(ReasonNotFound, "project not found")
	case ActorForeignKey:
		return Deny(ReasonKeyProject, "API key is not valid for this project")
	case ActorAnonymous:
		return Deny(ReasonNotAuthenticated, "no valid credential")
	}
	return Deny(ReasonNotAuthenticated, "unrecognized actor")
}

func decideMember(actor Actor, action Action, res Resource) Decision {
	switch actor.Role {
	case RoleAdmin:
		if action == ActionDeleteProject {
			return Deny(ReasonOwnerOnly, "only the project owner may delete the project")
		}
		return Allow()
	case RoleEditor:
		return decideEditor(actor, action, res, true)
	}
	return Deny(ReasonInsufficientRole, "membership role grants no access")
}

func decideAPIKey(actor Actor, action Action, res Resource) Decision {
	// A revoked key denies no matter what role its record still carries.
	if actor.Revoked {
		return Deny(ReasonNotAuthenticated, "API key has been revoked")
	}
	switch actor.Role {
	case RoleAdmin:
		if action == ActionDeleteProject {
			return Deny(ReasonOwnerOnly, "only the project owner may delete the project")
		}
		return Allow()
	case RoleEditor:
		// API keys are never locale-scoped.
		return decideEditor(actor, action, res, false)
	case RoleReadOnly:
		if readAction(action) {
			return Allow()
		}
		return Deny(ReasonInsufficientRole, "read-only key may not "+string(action))
	}
	return Deny(ReasonInsufficientRole, "key role grants no access")
}

// decideEditor covers member editors and editor API keys. Editors may
// translate (subject to lock state and, for members, locale scope), set term
// labels (subject to lock state), and read. Everything structural is denied.
func decideEditor(actor Actor, action Action, res Resource, localeScoped bool) Decision {
	if res.TermLocked && lockGuarded(action) {
		return Deny(ReasonTermLocked, "term is locked")
	}
	switch action {
	case ActionViewProject, ActionListMembers:
		return Allow()
	case ActionTranslateLocale:
		if localeScoped && !CanActOnLocale(actor, res.Locale) {
			return Deny(ReasonLocaleScope, "locale is not assigned to this editor")
		}
		return Allow()
	case ActionSetTermLabels:
		return Allow()
	}
	if lockTransition(action) {
		return Deny(ReasonInsufficientRole, "only an owner or admin may change term lock state")
	}
	return Deny(ReasonInsufficientRole, "role editor may not "+string(action))
}

// readAction reports whether action only reads project content. Listing API
// keys is deliberately excluded: key metadata is admin-or-above even though
// it is a read.
func readAction(action Action) bool {
	switch action {
	case ActionViewProject, ActionListMembers:
		return true
	}
	return false
}
