package authz

// LocaleSet is the set of locale codes an editor may write translations for.
// The zero value is unrestricted, matching the stored convention that an
// empty or absent assignment list means "every current and future locale".
type LocaleSet struct {
	restricted bool
	codes      map[string]struct{}
}

// UnrestrictedLocales returns a set that contains every locale.
func UnrestrictedLocales() LocaleSet {
	return LocaleSet{}
}

// RestrictedLocales builds a set from stored assignment codes. An empty list
// yields an unrestricted set.
func RestrictedLocales(codes ...string) LocaleSet {
	if len(codes) == 0 {
		return UnrestrictedLocales()
	}
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return LocaleSet{restricted: true, codes: m}
}

// Unrestricted reports whether the set contains every locale.
func (s LocaleSet) Unrestricted() bool {
	return !s.restricted
}

// Contains reports whether code is in the set.
func (s LocaleSet) Contains(code string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.codes[code]
	return ok
}

// CanActOnLocale is the locale scope filter. It only ever narrows
// locale-restricted member editors; owners, admins, and API keys of any role
// always pass. It is consulted for translation writes and composed with the
// term lock check: both must pass.
func CanActOnLocale(actor Actor, code string) bool {
	if actor.Kind != ActorMember || actor.Role != RoleEditor {
		return true
	}
	return actor.Locales.Contains(code)
}
