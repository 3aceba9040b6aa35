package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/core/domain"
)

type stubRoleDirectory struct {
	roles map[string]string
	err   error
	calls int
}

func (s *stubRoleDirectory) RoleByEmail(_ context.Context, email string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	role, ok := s.roles[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

func adminRequest(t *testing.T, claimEmail string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if claimEmail != "" {
		c.Set(ClaimsKey, claimEmail)
	}
	return c
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	roles := &stubRoleDirectory{roles: map[string]string{"root@example.com": domain.RoleAdmin}}

	reached := false
	handler := RequireAdmin(roles)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(adminRequest(t, "root@example.com")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !reached {
		t.Fatalf("handler not reached for admin")
	}
	if roles.calls != 1 {
		t.Fatalf("expected a role lookup per request, got %d", roles.calls)
	}
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	roles := &stubRoleDirectory{roles: map[string]string{"alice@example.com": domain.RoleCustomer}}

	cases := []struct {
		name  string
		email string
	}{
		{"customer", "alice@example.com"},
		// A verified token whose user record was deleted gets the same 403.
		{"unknown user", "ghost@example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireAdmin(roles)(func(c echo.Context) error {
				t.Fatalf("handler reached without admin role")
				return nil
			})

			err := handler(adminRequest(t, tc.email))
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %v", err)
			}
		})
	}
}

func TestRequireAdmin_MissingClaims(t *testing.T) {
	roles := &stubRoleDirectory{}
	handler := RequireAdmin(roles)(func(c echo.Context) error {
		t.Fatalf("handler reached without claims")
		return nil
	})

	err := handler(adminRequest(t, ""))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if roles.calls != 0 {
		t.Fatalf("role directory consulted without claims")
	}
}

func TestRequireAdmin_DirectoryError(t *testing.T) {
	roles := &stubRoleDirectory{err: errors.New("connection reset")}
	handler := RequireAdmin(roles)(func(c echo.Context) error {
		t.Fatalf("handler reached despite directory failure")
		return nil
	})

	err := handler(adminRequest(t, "root@example.com"))
	if err == nil {
		t.Fatalf("expected directory error to surface")
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store failure should not be pre-mapped, got %v", he)
	}
}
