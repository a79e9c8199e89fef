package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, name string) (*domain.Category, error)
	SoftDelete(ctx context.Context, id string) (*domain.Category, error)
}
