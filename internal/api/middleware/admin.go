package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/api/metrics"
	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// RequireAdmin is the role gate: it resolves the authenticated email's stored
// role from the role directory and rejects anything but admin. It must be
// registered after Auth — a request reaching it without claims is mis-wired
// and is rejected outright.
func RequireAdmin(roles ports.RoleDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ClaimsKey).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, err := roles.RoleByEmail(c.Request().Context(), email)
			if err != nil && err != domain.ErrUserNotFound {
				return err
			}
			if role != domain.RoleAdmin {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
