package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// Create handles POST /v1/projects. The session user becomes the project's
// owner; API keys never reach this route.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// List handles GET /v1/projects, returning the projects the session user
// owns or is a member of.
//
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /v1/projects/:projectID.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string  true  "Project ID"
// @Success      200        {object}  domain.Project
// @Failure      404        {object}  map[string]string
// @Router       /v1/projects/{projectID} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Rename handles PATCH /v1/projects/:projectID.
//
// @Summary      Rename a project
// @Tags         projects
// @Accept       json
// @Security     BearerAuth
// @Param        projectID  path    string          true  "Project ID"
// @Param        body       body    projectRequest  true  "New name"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID} [patch]
func (h *ProjectHandler) Rename(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Rename(c.Request().Context(), actor, c.Param("projectID"), req.Name); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/projects/:projectID. Owner only.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("projectID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Activity handles GET /v1/projects/:projectID/activity.
//
// @Summary      List recent project activity
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path   string  true   "Project ID"
// @Param        limit      query  int     false  "Max entries (default 50, cap 200)"
// @Success      200  {array}   domain.ActivityEntry
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/activity [get]
func (h *ProjectHandler) Activity(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.Activity(c.Request().Context(), actor, c.Param("projectID"), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entries)
}
