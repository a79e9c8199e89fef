package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

func newProductService(products *memProductRepo, categories *memCategoryRepo) *ProductService {
	refs := NewReferenceChecker(newMemRoleRepo(), categories)
	return NewProductService(products, categories, refs, zerolog.Nop())
}

func seedCategory(t *testing.T, categories *memCategoryRepo, name string) *domain.Category {
	t.Helper()
	c, err := categories.Create(context.Background(), &domain.Category{Name: name})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func TestProductService_Create_WithoutCategory(t *testing.T) {
	svc := newProductService(newMemProductRepo(), newMemCategoryRepo())

	product, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: 9.99})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.CategoryID != "" || product.Category != nil {
		t.Fatalf("expected no category on %+v", product)
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	svc := newProductService(newMemProductRepo(), newMemCategoryRepo())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Price: 9.99, CategoryID: "category-does-not-exist",
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestProductService_Create_SoftDeletedCategory(t *testing.T) {
	categories := newMemCategoryRepo()
	category := seedCategory(t, categories, "Books")
	if _, err := categories.SoftDelete(context.Background(), category.ID); err != nil {
		t.Fatalf("soft delete category: %v", err)
	}
	svc := newProductService(newMemProductRepo(), categories)

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Price: 9.99, CategoryID: category.ID,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for soft-deleted category, got %v", err)
	}
}

func TestProductService_Create_JoinsCategory(t *testing.T) {
	categories := newMemCategoryRepo()
	category := seedCategory(t, categories, "Books")
	svc := newProductService(newMemProductRepo(), categories)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Go in Practice", Price: 30, CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.Category == nil || product.Category.Name != "Books" {
		t.Fatalf("expected joined category, got %+v", product.Category)
	}
}

func TestProductService_Create_NegativePrice(t *testing.T) {
	svc := newProductService(newMemProductRepo(), newMemCategoryRepo())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: -1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestProductService_Update_ValidatesCategoryWhenProvided(t *testing.T) {
	products := newMemProductRepo()
	categories := newMemCategoryRepo()
	svc := newProductService(products, categories)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: 5})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	missing := "category-does-not-exist"
	_, err = svc.Update(context.Background(), product.ID, ports.UpdateProductInput{CategoryID: &missing})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	// Clearing the reference is always allowed.
	empty := ""
	updated, err := svc.Update(context.Background(), product.ID, ports.UpdateProductInput{CategoryID: &empty})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.CategoryID != "" {
		t.Fatalf("expected cleared category, got %q", updated.CategoryID)
	}
}

func TestProductService_Delete_SecondCallNotFound(t *testing.T) {
	svc := newProductService(newMemProductRepo(), newMemCategoryRepo())

	product, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: 5})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Delete(context.Background(), product.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Delete(context.Background(), product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("deleted product should be invisible, got %v", err)
	}
}
