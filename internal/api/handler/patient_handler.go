package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

const birthdateLayout = "2006-01-02"

// PatientHandler covers the admission module: directory listing/search and
// patient creation.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// List handles GET /v1/patients?q= — search or full listing.
//
// @Summary      Search the patient directory
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Cedula substring or case-insensitive name substring"
// @Success      200  {object}  listPatientsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	resp := listPatientsResponse{
		Data:  make([]patientResponse, 0, len(patients)),
		Total: len(patients),
	}
	for _, p := range patients {
		resp.Data = append(resp.Data, toPatientResponse(&p))
	}
	if resp.Total == 0 {
		resp.Message = "no patients matched the search"
	}

	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/patients — the admission form.
//
// @Summary      Admit a new patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      admitPatientRequest  true  "Admission form fields"
// @Success      201   {object}  admitPatientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req admitPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "birthdate must be a date in the form 2006-01-02")
	}

	patient, err := h.service.Admit(c.Request().Context(), ports.AdmitPatientInput{
		Name:      req.Name,
		Cedula:    req.Cedula,
		Birthdate: birthdate,
		Gender:    req.Gender,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, admitPatientResponse{
		Message: fmt.Sprintf("patient %s (ID: %s) registered successfully", patient.Name, patient.ID),
		Patient: toPatientResponse(patient),
	})
}

func toPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{
		ID:        p.ID,
		Name:      p.Name,
		Cedula:    p.Cedula,
		Phone:     p.Phone,
		Birthdate: p.Birthdate.Format(birthdateLayout),
		Gender:    p.Gender,
	}
}
