package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// CreateUserInput is the admin-managed user creation payload. RoleID is
// mandatory and must reference a live role.
type CreateUserInput struct {
	Username  string
	Password  string
	Email     string
	FullName  string
	AvatarURL string
	RoleID    string
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username  *string
	Password  *string
	Email     *string
	FullName  *string
	AvatarURL *string
	RoleID    *string
}

type UserService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
