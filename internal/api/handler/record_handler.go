package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// RecordHandler serves the clinical-record page: demographic lookup and
// evolution notes.
type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Get handles GET /v1/records?patient=P001.
//
// @Summary      Load the clinical record header for a patient
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        patient  query     string  true  "Patient identifier from the page URL"
// @Success      200      {object}  recordResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/records [get]
func (h *RecordHandler) Get(c echo.Context) error {
	summary, err := h.service.Lookup(c.Request().Context(), c.QueryParam("patient"))
	if err != nil {
		if errors.Is(err, domain.ErrNoActivePatient) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "no patient selected"})
		}
		return err
	}

	return c.JSON(http.StatusOK, recordResponse{
		Patient: toPatientResponse(summary.Patient),
		Age:     summary.Age,
	})
}

// SaveNote handles POST /v1/records/:id/notes. The note goes to the
// diagnostic log only; nothing is retained.
//
// @Summary      Record an evolution note for the active patient
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Patient identifier"
// @Param        body  body      saveNoteRequest  true  "Note content"
// @Success      200   {object}  redirectResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/records/{id}/notes [post]
func (h *RecordHandler) SaveNote(c echo.Context) error {
	var req saveNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SaveNote(c.Request().Context(), c.Param("id"), req.Text); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "note saved successfully",
	})
}
