package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Role, error) {
	return s.roles.List(ctx, opts)
}

func (s *RoleService) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	created, err := s.roles.Create(ctx, &domain.Role{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) Update(ctx context.Context, id string, input ports.UpdateRoleInput) (*domain.Role, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}
	return s.roles.Update(ctx, id, ports.RoleUpdate{
		Name:        input.Name,
		Description: input.Description,
	})
}

func (s *RoleService) Delete(ctx context.Context, id string) (*domain.Role, error) {
	deleted, err := s.roles.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("role", deleted.Name).Msg("role soft-deleted")
	return deleted, nil
}
