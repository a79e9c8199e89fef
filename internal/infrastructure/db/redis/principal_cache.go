package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/catalog-system/internal/core/domain"
)

const principalTTL = time.Minute

// PrincipalCache caches resolved principals by username with a short TTL.
// Key format: principal:<username>
//
// The cache is best-effort: any Redis failure behaves as a miss, and user
// writes invalidate the key so revocations propagate within one request.
type PrincipalCache struct {
	client *redis.Client
}

func NewPrincipalCache(client *redis.Client) *PrincipalCache {
	return &PrincipalCache{client: client}
}

// cachedPrincipal is the stored shape. The password hash is never cached;
// the resolver has no use for it and Redis should not hold credentials.
type cachedPrincipal struct {
	ID         string       `json:"id"`
	Username   string       `json:"username"`
	Email      string       `json:"email"`
	FullName   string       `json:"full_name"`
	AvatarURL  string       `json:"avatar_url,omitempty"`
	Active     bool         `json:"active"`
	RoleID     string       `json:"role_id"`
	Role       *domain.Role `json:"role,omitempty"`
	LoginCount int64        `json:"login_count"`
}

func (c *PrincipalCache) Get(ctx context.Context, username string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		return nil, false
	}

	var cp cachedPrincipal
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, false
	}
	return &domain.User{
		ID:         cp.ID,
		Username:   cp.Username,
		Email:      cp.Email,
		FullName:   cp.FullName,
		AvatarURL:  cp.AvatarURL,
		Active:     cp.Active,
		RoleID:     cp.RoleID,
		Role:       cp.Role,
		LoginCount: cp.LoginCount,
	}, true
}

func (c *PrincipalCache) Set(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(cachedPrincipal{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		AvatarURL:  user.AvatarURL,
		Active:     user.Active,
		RoleID:     user.RoleID,
		Role:       user.Role,
		LoginCount: user.LoginCount,
	})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(user.Username), raw, principalTTL).Err()
}

func (c *PrincipalCache) Invalidate(ctx context.Context, username string) {
	_ = c.client.Del(ctx, c.key(username)).Err()
}

func (c *PrincipalCache) key(username string) string {
	return "principal:" + username
}
