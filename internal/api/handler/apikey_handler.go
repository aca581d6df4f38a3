package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
)

// APIKeyHandler handles HTTP requests for project API keys.
type APIKeyHandler struct {
	service ports.APIKeyService
}

func NewAPIKeyHandler(service ports.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{service: service}
}

type createKeyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Role string `json:"role" validate:"required,oneof=read-only editor admin"`
}

// createKeyResponse carries the raw token. It appears here and nowhere else;
// only the digest is stored.
type createKeyResponse struct {
	Key   *domain.APIKey `json:"key"`
	Token string         `json:"token"`
}

// Create handles POST /v1/projects/:projectID/keys.
//
// @Summary      Create an API key
// @Tags         keys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string            true  "Project ID"
// @Param        body       body      createKeyRequest  true  "Key name and role"
// @Success      201        {object}  createKeyResponse
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /v1/projects/{projectID}/keys [post]
func (h *APIKeyHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key, token, err := h.service.Create(c.Request().Context(), actor, c.Param("projectID"), req.Name, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createKeyResponse{Key: key, Token: token})
}

// List handles GET /v1/projects/:projectID/keys. Editors and read-only keys
// are denied.
//
// @Summary      List project API keys
// @Tags         keys
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Success      200  {array}   domain.APIKey
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects/{projectID}/keys [get]
func (h *APIKeyHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	keys, err := h.service.List(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, keys)
}

// Revoke handles DELETE /v1/projects/:projectID/keys/:keyID. Revocation is
// permanent; the key then behaves as an anonymous credential.
//
// @Summary      Revoke an API key
// @Tags         keys
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        keyID      path  string  true  "Key ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/keys/{keyID} [delete]
func (h *APIKeyHandler) Revoke(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Revoke(c.Request().Context(), actor, c.Param("projectID"), c.Param("keyID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
