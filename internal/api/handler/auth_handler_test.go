package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/auth"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

type stubAuthService struct {
	registerFn       func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	profileFn        func(ctx context.Context, userID string) (*domain.User, error)
	changePasswordFn func(ctx context.Context, userID, current, next string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changePasswordFn(ctx, userID, current, next)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func withClaims(req *http.Request, subject, role string) *http.Request {
	return req.WithContext(auth.WithClaims(req.Context(), auth.Claims{Subject: subject, Role: role}))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return out
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Email != "a@b.com" || in.Password != "secret123" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "tok",
				User:  &domain.User{ID: "u1", Email: in.Email, PasswordHash: "hash", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", `{"email":"a@b.com","password":"secret123"}`), rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decode(t, rec)
	if resp["token"] != "tok" {
		t.Fatalf("expected token in response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialised")
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("response leaks the hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	called := false
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			called = true
			return nil, nil
		},
	})

	for _, body := range []string{`{"email":"nope","password":"secret123"}`, `{"email":"a@b.com","password":"123"}`, `{bad json`} {
		c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", body), httptest.NewRecorder())
		if err := h.Register(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %s, got %v", body, err)
		}
	}
	if called {
		t.Fatalf("service must not be called for invalid input")
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	})

	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", `{"email":"a@b.com","password":"secret123"}`), httptest.NewRecorder())
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if password != "right" {
				return nil, domain.ErrInvalidCredentials
			}
			return &ports.AuthResult{Token: "tok", User: &domain.User{ID: "u1", Email: email}}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"a@b.com","password":"right"}`), rec)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || decode(t, rec)["token"] != "tok" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	c = e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"a@b.com","password":"wrong"}`), httptest.NewRecorder())
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		profileFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "a@b.com", PasswordHash: "secret-hash"}, nil
		},
	})

	rec := httptest.NewRecorder()
	req := withClaims(httptest.NewRequest(http.MethodGet, "/auth/profile", nil), "u42", domain.RoleUser)
	if err := h.Profile(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["id"] != "u42" {
		t.Fatalf("expected caller's profile, got %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("profile leaks the password hash")
	}
}

func TestAuthHandler_Profile_WithoutClaims(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	err := h.Profile(e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/profile", nil), httptest.NewRecorder()))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	e := newEcho()
	var gotUser, gotCurrent, gotNext string
	h := NewAuthHandler(&stubAuthService{
		changePasswordFn: func(_ context.Context, id, current, next string) error {
			gotUser, gotCurrent, gotNext = id, current, next
			return nil
		},
	})

	rec := httptest.NewRecorder()
	req := withClaims(jsonRequest(http.MethodPut, "/auth/password", `{"currentPassword":"old","newPassword":"newpass1"}`), "u1", domain.RoleUser)
	if err := h.ChangePassword(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotUser != "u1" || gotCurrent != "old" || gotNext != "newpass1" {
		t.Fatalf("unexpected args %s %s %s", gotUser, gotCurrent, gotNext)
	}
}
