package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

// In-memory repositories mirroring the Mongo semantics: reads exclude
// soft-deleted documents, soft delete is conditional on visibility, and
// unique constraints surface as the *Exists sentinels.

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("user-%d", r.seq)
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *memUserRepo) List(_ context.Context, opts ports.ListOptions) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Deleted && !opts.IncludeDeleted {
			continue
		}
		if opts.Search != "" &&
			!strings.Contains(strings.ToLower(u.Username), strings.ToLower(opts.Search)) &&
			!strings.Contains(strings.ToLower(u.FullName), strings.ToLower(opts.Search)) {
			continue
		}
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Deleted {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username && !u.Deleted {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.Deleted {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsernameAndEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Email == email && !u.Deleted {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	stored := cloneUser(user)
	stored.ID = r.nextID()
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *memUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Deleted {
		return nil, domain.ErrUserNotFound
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.AvatarURL != nil {
		u.AvatarURL = *update.AvatarURL
	}
	if update.RoleID != nil {
		u.RoleID = *update.RoleID
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) Activate(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Deleted {
		return nil, domain.ErrUserNotFound
	}
	u.Active = true
	return cloneUser(u), nil
}

func (r *memUserRepo) IncrementLoginCount(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok || u.Deleted {
		return domain.ErrUserNotFound
	}
	u.LoginCount++
	return nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Deleted {
		return nil, domain.ErrUserNotFound
	}
	u.Deleted = true
	return cloneUser(u), nil
}

type memRoleRepo struct {
	roles map[string]*domain.Role
	seq   int
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: make(map[string]*domain.Role)}
}

// seed inserts a live role and returns it.
func (r *memRoleRepo) seed(name string) *domain.Role {
	r.seq++
	role := &domain.Role{ID: fmt.Sprintf("role-%d", r.seq), Name: name}
	r.roles[role.ID] = role
	return role
}

func cloneRole(role *domain.Role) *domain.Role {
	if role == nil {
		return nil
	}
	clone := *role
	return &clone
}

func (r *memRoleRepo) List(_ context.Context, opts ports.ListOptions) ([]domain.Role, error) {
	var out []domain.Role
	for _, role := range r.roles {
		if role.Deleted && !opts.IncludeDeleted {
			continue
		}
		out = append(out, *cloneRole(role))
	}
	return out, nil
}

func (r *memRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok || role.Deleted {
		return nil, domain.ErrRoleNotFound
	}
	return cloneRole(role), nil
}

func (r *memRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name && !role.Deleted {
			return cloneRole(role), nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *memRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return nil, domain.ErrRoleExists
		}
	}
	r.seq++
	stored := cloneRole(role)
	stored.ID = fmt.Sprintf("role-%d", r.seq)
	r.roles[stored.ID] = stored
	return cloneRole(stored), nil
}

func (r *memRoleRepo) Update(_ context.Context, id string, update ports.RoleUpdate) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok || role.Deleted {
		return nil, domain.ErrRoleNotFound
	}
	if update.Name != nil {
		role.Name = *update.Name
	}
	if update.Description != nil {
		role.Description = *update.Description
	}
	return cloneRole(role), nil
}

func (r *memRoleRepo) SoftDelete(_ context.Context, id string) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok || role.Deleted {
		return nil, domain.ErrRoleNotFound
	}
	role.Deleted = true
	return cloneRole(role), nil
}

type memCategoryRepo struct {
	categories map[string]*domain.Category
	seq        int
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*domain.Category)}
}

func cloneCategory(c *domain.Category) *domain.Category {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *memCategoryRepo) List(_ context.Context, opts ports.ListOptions) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if c.Deleted && !opts.IncludeDeleted {
			continue
		}
		out = append(out, *cloneCategory(c))
	}
	return out, nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.Deleted {
		return nil, domain.ErrCategoryNotFound
	}
	return cloneCategory(c), nil
}

func (r *memCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.seq++
	stored := cloneCategory(category)
	stored.ID = fmt.Sprintf("category-%d", r.seq)
	r.categories[stored.ID] = stored
	return cloneCategory(stored), nil
}

func (r *memCategoryRepo) Update(_ context.Context, id string, name string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.Deleted {
		return nil, domain.ErrCategoryNotFound
	}
	c.Name = name
	return cloneCategory(c), nil
}

func (r *memCategoryRepo) SoftDelete(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.Deleted {
		return nil, domain.ErrCategoryNotFound
	}
	c.Deleted = true
	return cloneCategory(c), nil
}

type memProductRepo struct {
	products map[string]*domain.Product
	seq      int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *memProductRepo) List(_ context.Context, opts ports.ListOptions) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Deleted && !opts.IncludeDeleted {
			continue
		}
		out = append(out, *cloneProduct(p))
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Deleted || p.CategoryID != categoryID {
			continue
		}
		out = append(out, *cloneProduct(p))
	}
	return out, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Deleted {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *memProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.seq++
	stored := cloneProduct(product)
	stored.ID = fmt.Sprintf("product-%d", r.seq)
	r.products[stored.ID] = stored
	return cloneProduct(stored), nil
}

func (r *memProductRepo) Update(_ context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Deleted {
		return nil, domain.ErrProductNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.CategoryID != nil {
		p.CategoryID = *update.CategoryID
	}
	return cloneProduct(p), nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Deleted {
		return nil, domain.ErrProductNotFound
	}
	p.Deleted = true
	return cloneProduct(p), nil
}

// memCache records principal cache traffic for assertions.
type memCache struct {
	entries      map[string]*domain.User
	invalidated  []string
	sets         int
	hits, misses int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*domain.User)}
}

func (c *memCache) Get(_ context.Context, username string) (*domain.User, bool) {
	u, ok := c.entries[username]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return cloneUser(u), true
}

func (c *memCache) Set(_ context.Context, user *domain.User) {
	c.sets++
	c.entries[user.Username] = cloneUser(user)
}

func (c *memCache) Invalidate(_ context.Context, username string) {
	c.invalidated = append(c.invalidated, username)
	delete(c.entries, username)
}
