package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/ports"
)

// MemberHandler handles HTTP requests for project membership.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type inviteRequest struct {
	Email   string   `json:"email" validate:"required,email"`
	Role    string   `json:"role" validate:"required,oneof=admin editor"`
	Locales []string `json:"locales"`
}

type memberUpdateRequest struct {
	Role    string   `json:"role" validate:"required,oneof=admin editor"`
	Locales []string `json:"locales"`
}

// List handles GET /v1/projects/:projectID/users.
//
// @Summary      List project members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Success      200  {array}   domain.ProjectUser
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/users [get]
func (h *MemberHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	members, err := h.service.List(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, members)
}

// Invite handles POST /v1/projects/:projectID/users. The invited user must
// already have an account; locales only apply to editors.
//
// @Summary      Invite a user to the project
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string         true  "Project ID"
// @Param        body       body      inviteRequest  true  "Invitation details"
// @Success      201        {object}  domain.ProjectUser
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /v1/projects/{projectID}/users [post]
func (h *MemberHandler) Invite(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Invite(c.Request().Context(), actor, c.Param("projectID"), req.Email, req.Role, req.Locales)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, member)
}

// Update handles PATCH /v1/projects/:projectID/users/:userID. Promoting an
// editor to admin clears any locale restriction.
//
// @Summary      Update a member's role or locale scope
// @Tags         members
// @Accept       json
// @Security     BearerAuth
// @Param        projectID  path  string               true  "Project ID"
// @Param        userID     path  string               true  "User ID"
// @Param        body       body  memberUpdateRequest  true  "New role and locales"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/projects/{projectID}/users/{userID} [patch]
func (h *MemberHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req memberUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), actor, c.Param("projectID"), c.Param("userID"), req.Role, req.Locales); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Remove handles DELETE /v1/projects/:projectID/users/:userID.
//
// @Summary      Remove a member from the project
// @Tags         members
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        userID     path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/users/{userID} [delete]
func (h *MemberHandler) Remove(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), actor, c.Param("projectID"), c.Param("userID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
