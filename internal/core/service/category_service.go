package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, products ports.ProductRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, products: products, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Category, error) {
	return s.categories.List(ctx, opts)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

// ListProducts returns the live products of a live category.
func (s *CategoryService) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Category = category
	}
	return products, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	created, err := s.categories.Create(ctx, &domain.Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return s.categories.Update(ctx, id, name)
}

// Delete soft-deletes the category. Products keep their reference; reads
// resolve it against live categories only, so the join simply comes back
// empty afterwards.
func (s *CategoryService) Delete(ctx context.Context, id string) (*domain.Category, error) {
	deleted, err := s.categories.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category", deleted.Name).Msg("category soft-deleted")
	return deleted, nil
}
