package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// RosterHandler exposes the per-user patient/staff roster CRUD and the
// real-time snapshot stream.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

type listRosterResponse struct {
	Kind string               `json:"kind"`
	Data []domain.RosterEntry `json:"data"`
}

// List handles GET /v1/roster/:kind.
//
// @Summary      List roster entries for the current user
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Roster kind: patients or staff"
// @Success      200   {object}  listRosterResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/roster/{kind} [get]
func (h *RosterHandler) List(c echo.Context) error {
	owner, kind, err := rosterScope(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), owner, kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listRosterResponse{Kind: string(kind), Data: entries})
}

// Create handles POST /v1/roster/:kind.
//
// @Summary      Create a roster entry
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string              true  "Roster kind: patients or staff"
// @Param        body  body      rosterEntryRequest  true  "Entry fields"
// @Success      201   {object}  domain.RosterEntry
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/roster/{kind} [post]
func (h *RosterHandler) Create(c echo.Context) error {
	owner, kind, err := rosterScope(c)
	if err != nil {
		return err
	}

	var req rosterEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), owner, kind, toRosterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /v1/roster/:kind/:id.
//
// @Summary      Update a roster entry
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string              true  "Roster kind: patients or staff"
// @Param        id    path      string              true  "Entry identifier"
// @Param        body  body      rosterEntryRequest  true  "Entry fields"
// @Success      200   {object}  domain.RosterEntry
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/roster/{kind}/{id} [put]
func (h *RosterHandler) Update(c echo.Context) error {
	owner, kind, err := rosterScope(c)
	if err != nil {
		return err
	}

	var req rosterEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), owner, kind, c.Param("id"), toRosterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /v1/roster/:kind/:id.
//
// @Summary      Delete a roster entry
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path  string  true  "Roster kind: patients or staff"
// @Param        id    path  string  true  "Entry identifier"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/roster/{kind}/{id} [delete]
func (h *RosterHandler) Delete(c echo.Context) error {
	owner, kind, err := rosterScope(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), owner, kind, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Watch handles GET /v1/roster/:kind/watch — a server-sent-event stream of
// full-list snapshots. The first snapshot arrives immediately; each change
// triggers a fresh one. The subscription is torn down when the client
// disconnects.
//
// @Summary      Stream full-list roster snapshots
// @Tags         roster
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        kind  path  string  true  "Roster kind: patients or staff"
// @Success      200
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/roster/{kind}/watch [get]
func (h *RosterHandler) Watch(c echo.Context) error {
	owner, kind, err := rosterScope(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	snapshots, cancel, err := h.service.Watch(ctx, owner, kind)
	if err != nil {
		return err
	}
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for snapshot := range snapshots {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(res, "event: snapshot\ndata: %s\n\n", payload); err != nil {
			return nil
		}
		res.Flush()
	}
	return nil
}

// rosterScope resolves the owner code from the session and the kind from the
// URL. Every roster path is scoped per user and per entity type.
func rosterScope(c echo.Context) (string, domain.RosterKind, error) {
	_, code, err := ctxSession(c)
	if err != nil {
		return "", "", err
	}
	kind, err := domain.ParseRosterKind(c.Param("kind"))
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "kind must be patients or staff")
	}
	return code, kind, nil
}

func toRosterInput(req rosterEntryRequest) ports.RosterEntryInput {
	return ports.RosterEntryInput{
		Name:      req.Name,
		Cedula:    req.Cedula,
		Role:      req.Role,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Birthdate: req.Birthdate,
		Gender:    req.Gender,
	}
}
