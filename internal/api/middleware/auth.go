package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/authz"
	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
	"github.com/localekit/localization-system/internal/core/service"
)

// Auth resolves the bearer credential into an authz.Identity and injects it
// into context. Session JWTs and API keys share the Authorization header; API
// keys are recognized by their prefix. A missing or unknown credential yields
// the anonymous identity rather than an immediate 401: the policy engine
// decides, so unauthenticated and no-relationship requests fail through the
// same path as every other denial.
func Auth(jwtSecret string, keys ports.APIKeyResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set("identity", authz.Identity{})
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token := parts[1]

			if domain.IsAPIKeyToken(token) {
				identity, err := resolveKey(c, keys, token)
				if err != nil {
					return err
				}
				c.Set("identity", identity)
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			c.Set("identity", authz.Identity{UserID: sub})
			return next(c)
		}
	}
}

// resolveKey looks up the stored key record for a raw token. Unknown tokens
// degrade to anonymous; revoked keys keep their record so the policy engine
// can deny them explicitly.
func resolveKey(c echo.Context, keys ports.APIKeyResolver, token string) (authz.Identity, error) {
	key, err := keys.Resolve(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrAPIKeyNotFound) {
			return authz.Identity{}, nil
		}
		return authz.Identity{}, err
	}

	return authz.Identity{Key: &authz.KeyIdentity{
		ID:        key.ID,
		ProjectID: key.ProjectID,
		Role:      service.KeyRole(key.Role),
		Revoked:   key.Revoked(),
	}}, nil
}
