package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/authz"
)

// ctxActor extracts the actor injected by the ProjectActor middleware.
// Absence means the route was registered outside a project group; that is a
// wiring bug, surfaced as a 500 rather than silently treated as anonymous.
func ctxActor(c echo.Context) (authz.Actor, error) {
	actor, ok := c.Get("actor").(authz.Actor)
	if !ok {
		return authz.Actor{}, echo.NewHTTPError(http.StatusInternalServerError, "actor not resolved")
	}
	return actor, nil
}

// ctxUserID extracts the session user for account-level surfaces (project
// listing and creation). API keys are pinned to a single project and have no
// business on these routes.
func ctxUserID(c echo.Context) (string, error) {
	identity, _ := c.Get("identity").(authz.Identity)
	if identity.IsAPIKey() {
		return "", echo.NewHTTPError(http.StatusForbidden, "api keys cannot access account surfaces")
	}
	if identity.UserID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity.UserID, nil
}
