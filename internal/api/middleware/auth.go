package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-system/internal/api/metrics"
	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

const principalKey = "principal"

// Auth extracts the bearer credential and resolves it to a live principal,
// which is attached to the request context for the gate and the handlers.
// The resolver treats soft-deleted users as nonexistent, so a deleted
// account fails authentication even with a valid token.
func Auth(resolver ports.PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_credential").Inc()
				return fmt.Errorf("%w: missing authorization header", domain.ErrUnauthenticated)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return fmt.Errorf("%w: invalid authorization header", domain.ErrUnauthenticated)
			}

			principal, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_credential").Inc()
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Principal returns the resolved principal attached by Auth, or nil when the
// middleware did not run.
func Principal(c echo.Context) *domain.User {
	principal, _ := c.Get(principalKey).(*domain.User)
	return principal
}
