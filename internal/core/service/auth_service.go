package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

// AuthService implements self-registration, login, account activation and
// principal resolution. Tokens carry only the username; the role and the
// active flag are always re-read from storage at resolve time, so revoking a
// user takes effect on the next request.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	cache     ports.PrincipalCache
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, cache ports.PrincipalCache, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		roles:     roles,
		cache:     cache,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates an inactive account with the base USER role.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: username, password and email are required", domain.ErrValidation)
	}

	baseRole, err := s.roles.FindByName(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, fmt.Errorf("%w: base role %q", domain.ErrInvalidReference, domain.RoleUser)
		}
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
		Active:       false,
		RoleID:       baseRole.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	created.Role = baseRole

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the password of an active account and returns a signed
// token. The login counter is incremented on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, fmt.Errorf("%w: account not activated", domain.ErrForbidden)
	}

	if err := s.users.IncrementLoginCount(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("username", user.Username).Msg("login counter not incremented")
	} else {
		user.LoginCount++
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.attachRole(ctx, user)
	return token, user, nil
}

// Activate flips an account to active when username and email both match a
// live user. Activating an already-active account succeeds and is a no-op;
// the reverse transition does not exist.
func (s *AuthService) Activate(ctx context.Context, username, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrValidation)
	}

	user, err := s.users.FindByUsernameAndEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}

	if !user.Active {
		user, err = s.users.Activate(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Invalidate(ctx, user.Username)
		}
		s.logger.Info().Str("username", user.Username).Msg("user activated")
	}

	s.attachRole(ctx, user)
	return user, nil
}

// Resolve maps a bearer credential to the live user it was issued for. Every
// failure collapses to domain.ErrUnauthenticated so callers cannot probe
// which part of the credential was wrong.
func (s *AuthService) Resolve(ctx context.Context, credential string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, username); ok {
			return cached, nil
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	s.attachRole(ctx, user)

	if s.cache != nil {
		s.cache.Set(ctx, user)
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// attachRole joins the role onto the user for responses and for the
// capability gate. A soft-deleted role leaves Role nil, which no allow-list
// matches.
func (s *AuthService) attachRole(ctx context.Context, user *domain.User) {
	if user.RoleID == "" {
		return
	}
	role, err := s.roles.FindByID(ctx, user.RoleID)
	if err != nil {
		return
	}
	user.Role = role
}
