package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/api/metrics"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// ClaimsKey is the context key under which Auth stores the verified email.
const ClaimsKey = "email"

// Auth is the token gate: it extracts the bearer token, verifies it, and
// injects the decoded email claim into the request context. Verification is
// synchronous — no I/O happens before the handler runs.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(ClaimsKey, claims.Email)
			return next(c)
		}
	}
}
