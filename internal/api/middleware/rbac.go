package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-system/internal/api/metrics"
	"github.com/storefront/catalog-system/internal/api/policy"
	"github.com/storefront/catalog-system/internal/core/domain"
)

// Authorize is the capability gate. It consults the static policy table for
// the (resource, action) pair the route was registered with and rejects
// inactive principals and roles outside the allow-list. It never touches
// storage beyond the already-resolved principal.
func Authorize(resource string, action policy.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				return domain.ErrUnauthenticated
			}

			if !principal.Active {
				metrics.PolicyDecisionsTotal.WithLabelValues(resource, string(action), "denied").Inc()
				return fmt.Errorf("%w: account not activated", domain.ErrForbidden)
			}
			if !policy.Allows(resource, action, principal.RoleName()) {
				metrics.PolicyDecisionsTotal.WithLabelValues(resource, string(action), "denied").Inc()
				return domain.ErrForbidden
			}

			metrics.PolicyDecisionsTotal.WithLabelValues(resource, string(action), "allowed").Inc()
			return next(c)
		}
	}
}
