package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/auth"
)

// ctxClaims returns the claims the Authenticate middleware attached to the
// request. Their absence means the route was mounted without the gate.
func ctxClaims(c echo.Context) (auth.Claims, error) {
	claims, ok := auth.ClaimsFromContext(c.Request().Context())
	if !ok || claims.Subject == "" {
		return auth.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
