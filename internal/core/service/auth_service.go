package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hygia-health/hygia-api/internal/api/metrics"
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// AuthService implements login and logout against the static credential
// directory and the server-side session store.
type AuthService struct {
	directory ports.CredentialDirectory
	sessions  ports.SessionStore
	nav       domain.NavigationMap
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	directory ports.CredentialDirectory,
	sessions ports.SessionStore,
	nav domain.NavigationMap,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{
		directory: directory,
		sessions:  sessions,
		nav:       nav,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login performs the Unauthenticated → Authenticated(role) transition.
// Credential rejection is generic: the caller never learns which field was
// wrong, and there is no lockout or attempt counting.
func (s *AuthService) Login(ctx context.Context, code, password string) (*ports.LoginResult, error) {
	if code == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.directory.FindByCode(ctx, code)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// Authenticated users whose role is outside the redirect table are
	// warned and sent back to the login page, never to an undefined page.
	redirect, ok := domain.LandingPage(user.Role)
	if !ok {
		s.logger.Warn().Str("code", user.Code).Str("role", user.Role).Msg("login with unrecognized role")
		metrics.LoginsTotal.WithLabelValues("unrecognized_role").Inc()
		return nil, domain.ErrUnrecognizedRole
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Code:      user.Code,
		Role:      user.Role,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.generateToken(session)
	if err != nil {
		// Best effort: don't leave an orphaned session behind.
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()
	s.logger.Info().Str("code", user.Code).Str("role", user.Role).Str("redirect", redirect).Msg("login successful")

	return &ports.LoginResult{Token: token, Session: session, Redirect: redirect}, nil
}

// Logout performs the Authenticated → Unauthenticated transition: every
// session field is destroyed with the stored record.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.SessionsActive.Dec()
	s.logger.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":    session.ID,
		"code":   session.Code,
		"role":   session.Role,
		"name":   session.Name,
		"avatar": session.Avatar,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
