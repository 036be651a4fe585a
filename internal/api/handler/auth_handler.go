package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// AuthHandler exposes login, logout, and session inspection.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a code/password pair and opens a session.
//
// @Summary      Log in with an access code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Code, req.Password)
	if err != nil {
		// A recognized user with an unrecognized role is warned and sent
		// back to the login page; bad credentials get a generic rejection
		// that never reveals which field was wrong.
		if errors.Is(err, domain.ErrUnrecognizedRole) {
			return c.JSON(http.StatusUnauthorized, redirectResponse{
				Message:  "user role not recognized, contact support",
				Redirect: domain.PageLogin,
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		Session: sessionResponse{
			Role:   result.Session.Role,
			Name:   result.Session.Name,
			Avatar: result.Session.Avatar,
		},
		Redirect: result.Redirect,
	})
}

// Logout destroys the current session.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  redirectResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _ := c.Get("session_id").(string)
	if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, redirectResponse{
		Message:  "session closed",
		Redirect: domain.PageLogin,
	})
}

// Session returns the fields every page reads from the current session.
//
// @Summary      Inspect the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	if _, _, err := ctxSession(c); err != nil {
		return err
	}
	name, _ := c.Get("name").(string)
	avatar, _ := c.Get("avatar").(string)
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, sessionResponse{
		Role:   role,
		Name:   name,
		Avatar: avatar,
	})
}
