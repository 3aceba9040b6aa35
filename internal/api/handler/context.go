package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/api/middleware"
)

// ctxEmail extracts the email claim injected by the Auth middleware. An empty
// claim means the route was wired without the token gate; fail fast with 401
// before any service call.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ClaimsKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
