package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-system/internal/api/middleware"
	"github.com/storefront/catalog-system/internal/api/response"
	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username  string `json:"username"  validate:"required"`
	Password  string `json:"password"  validate:"required,min=8"`
	Email     string `json:"email"     validate:"required,email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"      validate:"required"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      *string `json:"role"`
}

// List returns live users, with optional substring search on username and
// full name.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search           query     string  false  "Substring match on username or full name"
// @Param        include_deleted  query     bool    false  "Admin-only: include soft-deleted users"
// @Success      200              {object}  response.Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	users, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, users)
}

// Get returns a live user by id.
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}

// GetByUsername returns a live user by username.
//
// @Summary      Get user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Envelope
// @Failure      404       {object}  response.Envelope
// @Router       /users/username/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}

// Create adds a user with an arbitrary role. The role reference is validated
// against live roles before the write.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		RoleID:    req.Role,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, user)
}

// Update modifies a user. A principal may update its own record; updating
// anyone else requires MOD or ADMIN.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	principal := middleware.Principal(c)
	if principal == nil {
		return domain.ErrUnauthenticated
	}
	elevated := false
	switch principal.RoleName() {
	case domain.RoleMod, domain.RoleAdmin:
		elevated = true
	}
	if principal.ID != id && !elevated {
		return domain.ErrForbidden
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	// Self-service updates cannot reassign roles.
	if req.Role != nil && !elevated {
		return domain.ErrForbidden
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		RoleID:    req.Role,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}

// Delete soft-deletes a user. Deleting an already-deleted user reports not
// found.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}
