package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/ports"
)

// ProjectActor resolves the request identity against the :projectID route
// param exactly once per request and injects the resulting actor. Handlers
// under a project group read the actor from context and never touch raw
// credentials or membership rows themselves.
func ProjectActor(builder ports.ActorBuilder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			projectID := c.Param("projectID")
			if projectID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing project id")
			}

			identity, _ := c.Get("identity").(authz.Identity)
			actor, err := builder.Build(c.Request().Context(), identity, projectID)
			if err != nil {
				return err
			}

			c.Set("actor", actor)
			return next(c)
		}
	}
}
