package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

// UserService implements admin-managed user CRUD. Every write that sets a
// role reference goes through the ReferenceChecker first, and every user
// write invalidates the principal cache for the affected username.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	refs   *ReferenceChecker
	cache  ports.PrincipalCache
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, refs *ReferenceChecker, cache ports.PrincipalCache, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, refs: refs, cache: cache, logger: logger}
}

func (s *UserService) List(ctx context.Context, opts ports.ListOptions) ([]domain.User, error) {
	users, err := s.users.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Join roles with one lookup per distinct role id.
	byID := make(map[string]*domain.Role)
	for i := range users {
		id := users[i].RoleID
		if id == "" {
			continue
		}
		role, seen := byID[id]
		if !seen {
			role, _ = s.roles.FindByID(ctx, id)
			byID[id] = role
		}
		users[i].Role = role
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachRole(ctx, user)
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	s.attachRole(ctx, user)
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: username, password and email are required", domain.ErrValidation)
	}
	if err := s.refs.Role(ctx, input.RoleID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		AvatarURL:    input.AvatarURL,
		Active:       false,
		RoleID:       input.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.attachRole(ctx, created)

	s.logger.Info().Str("username", created.Username).Str("role_id", created.RoleID).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.RoleID != nil {
		if err := s.refs.Role(ctx, *input.RoleID); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		lowered := normalizeEmail(*input.Email)
		input.Email = &lowered
	}

	update := ports.UserUpdate{
		Username:  input.Username,
		Email:     input.Email,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
		RoleID:    input.RoleID,
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, fmt.Errorf("%w: password cannot be empty", domain.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	updated, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.attachRole(ctx, updated)

	s.invalidate(ctx, existing.Username)
	if updated.Username != existing.Username {
		s.invalidate(ctx, updated.Username)
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.users.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachRole(ctx, deleted)
	s.invalidate(ctx, deleted.Username)

	s.logger.Info().Str("username", deleted.Username).Msg("user soft-deleted")
	return deleted, nil
}

// normalizeEmail lowercases an address so the unique index and every email
// lookup are case-insensitive. Applied on every path that stores or matches
// an email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) attachRole(ctx context.Context, user *domain.User) {
	if user.RoleID == "" {
		return
	}
	if role, err := s.roles.FindByID(ctx, user.RoleID); err == nil {
		user.Role = role
	}
}

func (s *UserService) invalidate(ctx context.Context, username string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, username)
	}
}
