package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/auth"
	"github.com/zerosmoke/health-portal/internal/core/domain"
)

func contextWithRole(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithClaims(req.Context(), auth.Claims{Subject: "u1", Role: role}))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthorize_Allows(t *testing.T) {
	c, rec := contextWithRole(domain.RoleAdmin)

	called := false
	handler := Authorize(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorize_MultipleRoles(t *testing.T) {
	c, _ := contextWithRole(domain.RoleUser)
	err := Authorize(domain.RoleAdmin, domain.RoleUser)(func(echo.Context) error { return nil })(c)
	if err != nil {
		t.Fatalf("expected user to pass, got %v", err)
	}
}

func TestAuthorize_ForbidsWrongRole(t *testing.T) {
	c, _ := contextWithRole(domain.RoleUser)

	called := false
	err := Authorize(domain.RoleAdmin)(func(echo.Context) error {
		called = true
		return nil
	})(c)

	expectHTTPError(t, err, http.StatusForbidden)
	if called {
		t.Fatalf("next handler should not be called")
	}
}

func TestAuthorize_WithoutClaimsIsUnauthorized(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := Authorize(domain.RoleAdmin)(func(echo.Context) error { return nil })(c)
	expectHTTPError(t, err, http.StatusUnauthorized)
}
