package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

type CategoryService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id string, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
}
