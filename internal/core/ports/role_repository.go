package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// RoleUpdate carries a partial role update. Nil fields are left untouched.
type RoleUpdate struct {
	Name        *string
	Description *string
}

// RoleRepository defines role persistence.
type RoleRepository interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, id string, update RoleUpdate) (*domain.Role, error)
	SoftDelete(ctx context.Context, id string) (*domain.Role, error)
}
