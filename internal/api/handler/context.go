package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the session fields injected by the Guard middleware and
// performs a fast-fail check before any service call: a missing role proves
// the middleware never ran, so the request is rejected outright.
func ctxSession(c echo.Context) (role, code string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	code, _ = c.Get("code").(string)
	return role, code, nil
}
