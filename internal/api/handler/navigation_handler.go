package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// NavigationHandler serves the role-scoped sidebar menu.
type NavigationHandler struct {
	navService ports.NavigationService
}

func NewNavigationHandler(navService ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{navService: navService}
}

type navigationResponse struct {
	Items []ports.NavigationItem `json:"items"`
}

// Menu returns the sidebar entries for the session role, marking the entry
// matching the current page as active.
//
// @Summary      Build the sidebar menu for the current role
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        path  query     string  false  "Current page path used for the active marker"
// @Success      200   {object}  navigationResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Menu(c echo.Context) error {
	role, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	items := h.navService.Menu(role, c.QueryParam("path"))
	return c.JSON(http.StatusOK, navigationResponse{Items: items})
}
