package domain

import "errors"

// Error taxonomy shared by every service. The HTTP layer maps each sentinel
// to exactly one status code, so services never touch status codes directly.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidReference   = errors.New("invalid reference")

	ErrUserNotFound     = errors.New("user not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")

	ErrUserExists = errors.New("user already exists")
	ErrRoleExists = errors.New("role already exists")
)
