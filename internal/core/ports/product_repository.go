package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// ProductUpdate carries a partial product update. Nil fields are left
// untouched; a non-nil empty CategoryID clears the reference.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	CategoryID  *string
}

// ProductRepository defines product persistence.
type ProductRepository interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	SoftDelete(ctx context.Context, id string) (*domain.Product, error)
}
