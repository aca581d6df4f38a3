package authz

// Action enumerates every authorization-checked verb in the system.
type Action string

const (
	ActionViewProject           Action = "view_project"
	ActionManageProjectSettings Action = "manage_project_settings"
	ActionDeleteProject         Action = "delete_project"

	ActionCreateTerm     Action = "create_term"
	ActionUpdateTerm     Action = "update_term"
	ActionDeleteTerm     Action = "delete_term"
	ActionLockTerm       Action = "lock_term"
	ActionUnlockTerm     Action = "unlock_term"
	ActionLockAllTerms   Action = "lock_all_terms"
	ActionUnlockAllTerms Action = "unlock_all_terms"
	ActionSetTermLabels  Action = "set_term_labels"

	ActionTranslateLocale Action = "translate_locale"
	ActionAddLocale       Action = "add_locale"
	ActionDeleteLocale    Action = "delete_locale"

	ActionCreateLabel Action = "create_label"
	ActionUpdateLabel Action = "update_label"
	ActionDeleteLabel Action = "delete_label"

	ActionListMembers  Action = "list_members"
	ActionInviteMember Action = "invite_member"
	ActionUpdateMember Action = "update_member"
	ActionRemoveMember Action = "remove_member"

	ActionListAPIKeys  Action = "list_api_keys"
	ActionCreateAPIKey Action = "create_api_key"
	ActionRevokeAPIKey Action = "revoke_api_key"
)
