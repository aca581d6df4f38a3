package domain

import "errors"

// Authentication / authorization.
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Validation.
var ErrInvalidRole = errors.New("invalid role")

// Not-found sentinels. ErrProjectNotFound doubles as the denial for actors
// with no relationship to a project, so unauthorized callers cannot tell a
// missing project from an inaccessible one.
var ErrProjectNotFound = errors.New("project not found")
var ErrTermNotFound = errors.New("term not found")
var ErrTranslationNotFound = errors.New("translation not found")
var ErrLocaleNotFound = errors.New("locale not found")
var ErrLabelNotFound = errors.New("label not found")
var ErrMemberNotFound = errors.New("project member not found")
var ErrAPIKeyNotFound = errors.New("api key not found")
var ErrUserNotFound = errors.New("user not found")

// Conflict sentinels (uniqueness violations and invalid membership changes).
var ErrUserExists = errors.New("user already exists")
var ErrTermExists = errors.New("term already exists in project")
var ErrLocaleExists = errors.New("locale already added to project")
var ErrLabelExists = errors.New("label already exists in project")
var ErrMemberExists = errors.New("user is already a project member")
var ErrTranslationConflict = errors.New("concurrent translation write")
var ErrOwnerImmutable = errors.New("project owner cannot be modified as a member")
