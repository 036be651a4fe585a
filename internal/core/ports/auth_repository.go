package ports

import (
	"context"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// CredentialDirectory is the static login-code → user mapping queried once at
// login time. Implementations are read-only after construction.
type CredentialDirectory interface {
	FindByCode(ctx context.Context, code string) (*domain.User, error)
}

// SessionStore holds the per-login session records consulted by the auth
// guard on every protected request.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id string) error
}
