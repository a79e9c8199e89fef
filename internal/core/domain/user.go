package domain

import "time"

// Role names understood by the capability gate. The set is extensible at the
// storage level (roles are regular documents); these are the names the access
// policy table is written against.
const (
	RoleUser  = "USER"
	RoleMod   = "MOD"
	RoleAdmin = "ADMIN"
)

// User models an identity in the system. A user is created inactive and
// becomes active only through the activation flow; the transition is one-way.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Active       bool      `json:"active"`
	RoleID       string    `json:"role_id"`
	Role         *Role     `json:"role,omitempty"`
	LoginCount   int64     `json:"login_count"`
	Deleted      bool      `json:"deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleName returns the resolved role name, or "" when the role has not been
// joined onto the user.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
