package ports

import (
	"context"

	"github.com/storefront/catalog-system/internal/core/domain"
)

// RegisterInput is the self-registration payload. The role is always the
// base USER role; privileged roles are assigned through the user service.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

// AuthService implements registration, login and account activation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Activate(ctx context.Context, username, email string) (*domain.User, error)
}

// PrincipalResolver turns an opaque bearer credential into the live user it
// belongs to. It fails with domain.ErrUnauthenticated when the credential is
// missing, malformed, expired, or maps to no live user.
type PrincipalResolver interface {
	Resolve(ctx context.Context, credential string) (*domain.User, error)
}
