package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/api/metrics"
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// guardResponse is the rejection payload: the warning shown to the user plus
// the page the client must navigate to. The guard always sends callers back
// to the login page, never to an undefined one.
type guardResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Guard is the auth check run on every protected route (never on login).
// It validates the bearer JWT, confirms the server-side session still
// exists, and treats a session whose role is absent from the navigation map
// as invalid. All failures redirect to the login page.
func Guard(jwtSecret string, sessions ports.SessionStore, nav domain.NavigationMap) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, "missing_token", "session expired or not authenticated, please log in")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c, "invalid_token", "session expired or not authenticated, please log in")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return reject(c, "invalid_token", "session expired or not authenticated, please log in")
			}

			sid, _ := claims["sid"].(string)
			session, err := sessions.Get(c.Request().Context(), sid)
			if err != nil {
				return reject(c, "expired_session", "session expired or not authenticated, please log in")
			}
			if !session.Valid(nav) {
				return reject(c, "invalid_role", "unrecognized user role, please log in again")
			}

			c.Set("session_id", session.ID)
			c.Set("code", session.Code)
			c.Set("role", session.Role)
			c.Set("name", session.Name)
			c.Set("avatar", session.Avatar)

			return next(c)
		}
	}
}

func reject(c echo.Context, reason, message string) error {
	metrics.GuardRejectionsTotal.WithLabelValues(reason).Inc()
	return c.JSON(http.StatusUnauthorized, guardResponse{
		Error:    message,
		Redirect: domain.PageLogin,
	})
}
