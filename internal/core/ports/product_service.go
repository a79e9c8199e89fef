package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// CreateProductInput is the product creation payload. CategoryID is optional
// but must reference a live category when present.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	CategoryID  string
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Description *string
	CategoryID  *string
}

type ProductService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}
