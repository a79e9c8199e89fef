package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// PrincipalCache is a best-effort, short-TTL cache for resolved principals,
// keyed by username. Implementations swallow backend errors: a cache miss
// and a cache failure look the same to the caller.
type PrincipalCache interface {
	Get(ctx context.Context, username string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
	Invalidate(ctx context.Context, username string)
}
