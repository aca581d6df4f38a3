package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/ports"
)

// TermHandler handles HTTP requests for term and lock operations.
type TermHandler struct {
	service ports.TermService
}

func NewTermHandler(service ports.TermService) *TermHandler {
	return &TermHandler{service: service}
}

type termRequest struct {
	Value string `json:"value" validate:"required,min=1,max=500"`
}

type termLabelsRequest struct {
	LabelIDs []string `json:"label_ids"`
}

type lockAllResponse struct {
	Changed int64 `json:"changed"`
}

// Create handles POST /v1/projects/:projectID/terms. New terms start
// unlocked.
//
// @Summary      Create a term
// @Tags         terms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string       true  "Project ID"
// @Param        body       body      termRequest  true  "Term value"
// @Success      201        {object}  domain.Term
// @Failure      403        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms [post]
func (h *TermHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req termRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	term, err := h.service.Create(c.Request().Context(), actor, c.Param("projectID"), req.Value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, term)
}

// List handles GET /v1/projects/:projectID/terms.
//
// @Summary      List terms
// @Tags         terms
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Success      200  {array}   domain.Term
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms [get]
func (h *TermHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	terms, err := h.service.List(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, terms)
}

// Update handles PATCH /v1/projects/:projectID/terms/:termID. Locked terms
// require an admin-level actor.
//
// @Summary      Update a term's value
// @Tags         terms
// @Accept       json
// @Security     BearerAuth
// @Param        projectID  path  string       true  "Project ID"
// @Param        termID     path  string       true  "Term ID"
// @Param        body       body  termRequest  true  "New value"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/{termID} [patch]
func (h *TermHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req termRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), actor, c.Param("projectID"), c.Param("termID"), req.Value); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/projects/:projectID/terms/:termID.
//
// @Summary      Delete a term
// @Tags         terms
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        termID     path  string  true  "Term ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/{termID} [delete]
func (h *TermHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("projectID"), c.Param("termID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Lock handles POST /v1/projects/:projectID/terms/:termID/lock.
//
// @Summary      Lock a term
// @Tags         terms
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        termID     path  string  true  "Term ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/{termID}/lock [post]
func (h *TermHandler) Lock(c echo.Context) error {
	return h.setLocked(c, true)
}

// Unlock handles DELETE /v1/projects/:projectID/terms/:termID/lock.
//
// @Summary      Unlock a term
// @Tags         terms
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        termID     path  string  true  "Term ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/{termID}/lock [delete]
func (h *TermHandler) Unlock(c echo.Context) error {
	return h.setLocked(c, false)
}

func (h *TermHandler) setLocked(c echo.Context, locked bool) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.SetLocked(c.Request().Context(), actor, c.Param("projectID"), c.Param("termID"), locked); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// LockAll handles POST /v1/projects/:projectID/terms/lock-all.
//
// @Summary      Lock every term in the project
// @Tags         terms
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string  true  "Project ID"
// @Success      200        {object}  lockAllResponse
// @Failure      403        {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/lock-all [post]
func (h *TermHandler) LockAll(c echo.Context) error {
	return h.setLockedAll(c, true)
}

// UnlockAll handles POST /v1/projects/:projectID/terms/unlock-all.
//
// @Summary      Unlock every term in the project
// @Tags         terms
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string  true  "Project ID"
// @Success      200        {object}  lockAllResponse
// @Failure      403        {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/unlock-all [post]
func (h *TermHandler) UnlockAll(c echo.Context) error {
	return h.setLockedAll(c, false)
}

func (h *TermHandler) setLockedAll(c echo.Context, locked bool) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	changed, err := h.service.SetLockedAll(c.Request().Context(), actor, c.Param("projectID"), locked)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lockAllResponse{Changed: changed})
}

// SetLabels handles PUT /v1/projects/:projectID/terms/:termID/labels,
// replacing the term's label set.
//
// @Summary      Replace a term's labels
// @Tags         terms
// @Accept       json
// @Security     BearerAuth
// @Param        projectID  path  string             true  "Project ID"
// @Param        termID     path  string             true  "Term ID"
// @Param        body       body  termLabelsRequest  true  "Label IDs"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/terms/{termID}/labels [put]
func (h *TermHandler) SetLabels(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req termLabelsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SetLabels(c.Request().Context(), actor, c.Param("projectID"), c.Param("termID"), req.LabelIDs); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
