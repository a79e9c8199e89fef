package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// UserUpdate carries a partial user update. Nil fields are left untouched.
// The active flag is deliberately absent: activation is a separate one-way
// operation and no update path may flip it.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	FullName     *string
	AvatarURL    *string
	RoleID       *string
}

// UserRepository defines user persistence. Every read applies the
// not-deleted filter unless ListOptions.IncludeDeleted widens it.
type UserRepository interface {
	List(ctx context.Context, opts ListOptions) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsernameAndEmail(ctx context.Context, username, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Activate(ctx context.Context, id string) (*domain.User, error)
	IncrementLoginCount(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) (*domain.User, error)
}
