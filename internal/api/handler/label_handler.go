package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/ports"
)

// LabelHandler handles HTTP requests for project labels.
type LabelHandler struct {
	service ports.LabelService
}

func NewLabelHandler(service ports.LabelService) *LabelHandler {
	return &LabelHandler{service: service}
}

type labelRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=60"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// Create handles POST /v1/projects/:projectID/labels.
//
// @Summary      Create a label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string        true  "Project ID"
// @Param        body       body      labelRequest  true  "Label details"
// @Success      201        {object}  domain.Label
// @Failure      403        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /v1/projects/{projectID}/labels [post]
func (h *LabelHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req labelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	label, err := h.service.Create(c.Request().Context(), actor, c.Param("projectID"), req.Name, req.Color)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, label)
}

// List handles GET /v1/projects/:projectID/labels.
//
// @Summary      List project labels
// @Tags         labels
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Success      200  {array}   domain.Label
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/labels [get]
func (h *LabelHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	labels, err := h.service.List(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, labels)
}

// Update handles PATCH /v1/projects/:projectID/labels/:labelID.
//
// @Summary      Update a label
// @Tags         labels
// @Accept       json
// @Security     BearerAuth
// @Param        projectID  path  string        true  "Project ID"
// @Param        labelID    path  string        true  "Label ID"
// @Param        body       body  labelRequest  true  "Label details"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/labels/{labelID} [patch]
func (h *LabelHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req labelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), actor, c.Param("projectID"), c.Param("labelID"), req.Name, req.Color); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/projects/:projectID/labels/:labelID. The label
// is detached from every term that carries it.
//
// @Summary      Delete a label
// @Tags         labels
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        labelID    path  string  true  "Label ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/labels/{labelID} [delete]
func (h *LabelHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("projectID"), c.Param("labelID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
