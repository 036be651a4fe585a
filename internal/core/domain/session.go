package domain

import (
	"errors"
	"time"
)

var ErrSessionExpired = errors.New("session expired or missing")

// Session is the server-side record behind a bearer token. Exactly one
// session exists per login; logout deletes it, which is what makes the
// matching token unusable even before the JWT itself expires.
type Session struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the session can drive a protected page. A session
// whose role is not present in the navigation map is treated as invalid and
// forces re-authentication.
func (s *Session) Valid(nav NavigationMap) bool {
	if s == nil || s.Role == "" {
		return false
	}
	_, ok := nav[s.Role]
	return ok
}
