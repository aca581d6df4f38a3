package authz

// lockGuarded reports whether an action on a locked term is re-checked at
// the admin-or-owner threshold, overriding the base role table. Creating
// terms and adding or deleting locales are never constrained by an
// individual term's lock.
func lockGuarded(action Action) bool {
	switch action {
	case ActionUpdateTerm, ActionDeleteTerm, ActionSetTermLabels, ActionTranslateLocale:
		return true
	}
	return false
}

// lockTransition reports whether the action toggles a term's lock state.
// Transitions themselves are admin-or-above regardless of the current state.
func lockTransition(action Action) bool {
	switch action {
	case ActionLockTerm, ActionUnlockTerm, ActionLockAllTerms, ActionUnlockAllTerms:
		return true
	}
	return false
}
