package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

// ReferenceChecker verifies foreign references resolve to live records before
// a write is committed. Lookups go through the repositories' default
// not-deleted filter, so a soft-deleted referent counts as absent.
type ReferenceChecker struct {
	roles      ports.RoleRepository
	categories ports.CategoryRepository
}

func NewReferenceChecker(roles ports.RoleRepository, categories ports.CategoryRepository) *ReferenceChecker {
	return &ReferenceChecker{roles: roles, categories: categories}
}

// Role fails with domain.ErrInvalidReference unless id names a live role.
// A role reference is mandatory, so the empty id is itself invalid.
func (rc *ReferenceChecker) Role(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: role is required", domain.ErrInvalidReference)
	}
	if _, err := rc.roles.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("%w: role %q", domain.ErrInvalidReference, id)
		}
		return err
	}
	return nil
}

// Category accepts the empty id (the reference is optional) and otherwise
// fails with domain.ErrInvalidReference unless id names a live category.
func (rc *ReferenceChecker) Category(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := rc.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fmt.Errorf("%w: category %q", domain.ErrInvalidReference, id)
		}
		return err
	}
	return nil
}
