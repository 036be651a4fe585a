package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func signToken(t *testing.T, sid string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runGuard(t *testing.T, store *stubSessionStore, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/patients", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Guard(testSecret, store, domain.DefaultNavigationMap())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, called
}

func assertLoginRedirect(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != domain.PageLogin {
		t.Fatalf("redirect = %q, want %q", resp["redirect"], domain.PageLogin)
	}
}

func TestGuard_MissingToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}

	rec, called := runGuard(t, store, "")
	if called {
		t.Fatalf("next handler must not run without a token")
	}
	assertLoginRedirect(t, rec)
}

func TestGuard_ExpiredSession(t *testing.T) {
	// Valid JWT, but the server-side session is gone (logout or TTL).
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	token := signToken(t, "gone-session")

	rec, called := runGuard(t, store, "Bearer "+token)
	if called {
		t.Fatalf("next handler must not run with an expired session")
	}
	assertLoginRedirect(t, rec)
}

func TestGuard_UnrecognizedRole(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Code: "555", Role: "auditor", Name: "Aud. Gómez"},
	}}
	token := signToken(t, "s1")

	rec, called := runGuard(t, store, "Bearer "+token)
	if called {
		t.Fatalf("next handler must not run with an unmapped role")
	}
	assertLoginRedirect(t, rec)
}

func TestGuard_ValidSession(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Code: "12345", Role: domain.RoleMedico, Name: "Dr. Pérez", Avatar: "DP"},
	}}
	token := signToken(t, "s1")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Guard(testSecret, store, domain.DefaultNavigationMap())
	handler := mw(func(c echo.Context) error {
		if role, _ := c.Get("role").(string); role != domain.RoleMedico {
			t.Fatalf("role not injected, got %q", role)
		}
		if name, _ := c.Get("name").(string); name != "Dr. Pérez" {
			t.Fatalf("name not injected, got %q", name)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_WrongSigningKey(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	claims := jwt.MapClaims{"sid": "s1", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, called := runGuard(t, store, "Bearer "+token)
	if called {
		t.Fatalf("next handler must not run with a forged token")
	}
	assertLoginRedirect(t, rec)
}
