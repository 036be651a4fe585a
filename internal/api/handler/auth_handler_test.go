package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, code, password string) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Login(ctx context.Context, code, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, code, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, sessionID)
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, code, password string) (*ports.LoginResult, error) {
			if code != "67890" || password != "pass" {
				t.Fatalf("unexpected args: %s %s", code, password)
			}
			return &ports.LoginResult{
				Token: "tok",
				Session: &domain.Session{
					ID: "s1", Code: code, Role: domain.RoleRecepcionista,
					Name: "Sra. García", Avatar: "SG",
				},
				Redirect: domain.PageAdmission,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"code":"67890","password":"pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != domain.PageAdmission {
		t.Fatalf("redirect = %v, want %s", resp["redirect"], domain.PageAdmission)
	}
	session, _ := resp["session"].(map[string]any)
	if session["role"] != domain.RoleRecepcionista || session["avatar"] != "SG" {
		t.Fatalf("unexpected session payload: %v", session)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, code, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, `{"code":"12345","password":"wrong"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to bubble to the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_UnrecognizedRoleRedirects(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, code, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrUnrecognizedRole
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"code":"55555","password":"pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != domain.PageLogin {
		t.Fatalf("redirect = %q, want %q (never a blank page)", resp["redirect"], domain.PageLogin)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, code, password string) (*ports.LoginResult, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	})

	c, _ := newAuthContext(t, `{"code":"12345"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	loggedOut := ""
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, code, password string) (*ports.LoginResult, error) { return nil, nil },
		logoutFn: func(ctx context.Context, sessionID string) error {
			loggedOut = sessionID
			return nil
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", "s1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loggedOut != "s1" {
		t.Fatalf("logout called with %q, want s1", loggedOut)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != domain.PageLogin {
		t.Fatalf("redirect = %q, want %q", resp["redirect"], domain.PageLogin)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleMedico)
	c.Set("name", "Dr. Pérez")
	c.Set("avatar", "DP")

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != domain.RoleMedico || resp["name"] != "Dr. Pérez" || resp["avatar"] != "DP" {
		t.Fatalf("unexpected session payload: %v", resp)
	}
}
