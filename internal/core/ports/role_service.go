package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

type CreateRoleInput struct {
	Name        string
	Description string
}

type UpdateRoleInput struct {
	Name        *string
	Description *string
}

type RoleService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Role, error)
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	Update(ctx context.Context, id string, input UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id string) (*domain.Role, error)
}
