package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

// ProductService implements product CRUD. Category references are optional
// but must resolve to a live category at write time.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	refs       *ReferenceChecker
	logger     zerolog.Logger
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, refs *ReferenceChecker, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, refs: refs, logger: logger}
}

func (s *ProductService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Product, error) {
	products, err := s.products.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Category)
	for i := range products {
		id := products[i].CategoryID
		if id == "" {
			continue
		}
		category, seen := byID[id]
		if !seen {
			category, _ = s.categories.FindByID(ctx, id)
			byID[id] = category
		}
		products[i].Category = category
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, product)
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if err := s.refs.Category(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.products.Create(ctx, &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, created)

	s.logger.Info().Str("product", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if input.CategoryID != nil {
		if err := s.refs.Category(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.products.Update(ctx, id, ports.ProductUpdate{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, updated)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	deleted, err := s.products.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product", deleted.Name).Msg("product soft-deleted")
	return deleted, nil
}

func (s *ProductService) attachCategory(ctx context.Context, product *domain.Product) {
	if product.CategoryID == "" {
		return
	}
	if category, err := s.categories.FindByID(ctx, product.CategoryID); err == nil {
		product.Category = category
	}
}
