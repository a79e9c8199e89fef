package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-system/internal/api/middleware"
	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

// listOptions reads the listing query parameters. Including deleted records
// is an audit capability reserved for ADMIN; any other role asking for it is
// rejected before the service runs.
func listOptions(c echo.Context) (ports.ListOptions, error) {
	opts := ports.ListOptions{Search: c.QueryParam("search")}

	if c.QueryParam("include_deleted") == "true" {
		principal := middleware.Principal(c)
		if principal == nil || principal.RoleName() != domain.RoleAdmin {
			return opts, fmt.Errorf("%w: deleted records are admin-only", domain.ErrForbidden)
		}
		opts.IncludeDeleted = true
	}
	return opts, nil
}
