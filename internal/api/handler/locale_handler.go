package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/ports"
)

// LocaleHandler handles HTTP requests for project locales.
type LocaleHandler struct {
	service ports.LocaleService
}

func NewLocaleHandler(service ports.LocaleService) *LocaleHandler {
	return &LocaleHandler{service: service}
}

type localeRequest struct {
	Code string `json:"code" validate:"required,min=2,max=20"`
}

// Add handles POST /v1/projects/:projectID/locales.
//
// @Summary      Add a locale to the project
// @Tags         locales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string         true  "Project ID"
// @Param        body       body      localeRequest  true  "Locale code (e.g. de_DE)"
// @Success      201        {object}  domain.Locale
// @Failure      403        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /v1/projects/{projectID}/locales [post]
func (h *LocaleHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req localeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	locale, err := h.service.Add(c.Request().Context(), actor, c.Param("projectID"), req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, locale)
}

// List handles GET /v1/projects/:projectID/locales.
//
// @Summary      List project locales
// @Tags         locales
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Success      200  {array}   domain.Locale
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/locales [get]
func (h *LocaleHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	locales, err := h.service.List(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, locales)
}

// Delete handles DELETE /v1/projects/:projectID/locales/:code. Removing a
// locale drops its translations with it.
//
// @Summary      Remove a locale from the project
// @Tags         locales
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        code       path  string  true  "Locale code"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/locales/{code} [delete]
func (h *LocaleHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("projectID"), c.Param("code")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
