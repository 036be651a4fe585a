package ports

import (
	"context"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// LoginResult is returned to the transport layer on successful login.
type LoginResult struct {
	Token    string
	Session  *domain.Session
	Redirect string
}

// AuthService implements the login/logout state machine.
type AuthService interface {
	// Login authenticates a code/password pair against the credential
	// directory, creates a session, and resolves the role's landing page.
	Login(ctx context.Context, code, password string) (*LoginResult, error)
	// Logout destroys the session identified by sessionID. Destroying an
	// already-absent session is not an error.
	Logout(ctx context.Context, sessionID string) error
}
