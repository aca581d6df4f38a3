package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localekit/localization-system/internal/core/ports"
)

// TranslationHandler handles HTTP requests for translation values.
type TranslationHandler struct {
	service ports.TranslationService
}

func NewTranslationHandler(service ports.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

type translationRequest struct {
	Value string `json:"value" validate:"required"`
}

// Upsert handles PUT /v1/projects/:projectID/translations/:termID/:locale.
// The write is an upsert on (term, locale): first write creates, later
// writes replace.
//
// @Summary      Set a term's translation for a locale
// @Tags         translations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path      string              true  "Project ID"
// @Param        termID     path      string              true  "Term ID"
// @Param        locale     path      string              true  "Locale code"
// @Param        body       body      translationRequest  true  "Translation value"
// @Success      200        {object}  domain.Translation
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /v1/projects/{projectID}/translations/{termID}/{locale} [put]
func (h *TranslationHandler) Upsert(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req translationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	translation, err := h.service.Upsert(c.Request().Context(), actor,
		c.Param("projectID"), c.Param("termID"), c.Param("locale"), req.Value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, translation)
}

// ListByLocale handles GET /v1/projects/:projectID/translations/:locale.
//
// @Summary      List translations for a locale
// @Tags         translations
// @Produce      json
// @Security     BearerAuth
// @Param        projectID  path  string  true  "Project ID"
// @Param        locale     path  string  true  "Locale code"
// @Success      200  {array}   domain.Translation
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{projectID}/translations/{locale} [get]
func (h *TranslationHandler) ListByLocale(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	translations, err := h.service.ListByLocale(c.Request().Context(), actor,
		c.Param("projectID"), c.Param("locale"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, translations)
}
