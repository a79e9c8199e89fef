// Package policy holds the static access table consulted by the capability
// gate. Allow-lists are declared per (resource, action) pair in one place so
// the whole policy is auditable on a single screen; nothing mutates the table
// after init.
package policy

import "github.com/storefront/catalog-system/internal/core/domain"

// Action names the four operation classes the table distinguishes.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names used by the router and metrics labels.
const (
	ResourceUsers      = "users"
	ResourceRoles      = "roles"
	ResourceCategories = "categories"
	ResourceProducts   = "products"
)

var readAll = []string{domain.RoleUser, domain.RoleMod, domain.RoleAdmin}
var writeElevated = []string{domain.RoleMod, domain.RoleAdmin}
var deleteAdmin = []string{domain.RoleAdmin}

var table = map[string]map[Action][]string{
	ResourceUsers: {
		ActionRead:   readAll,
		ActionCreate: writeElevated,
		// Any active role passes the gate for updates; the handler narrows
		// the check to the principal's own record unless the role is
		// MOD or ADMIN.
		ActionUpdate: readAll,
		ActionDelete: deleteAdmin,
	},
	ResourceRoles: {
		ActionRead:   readAll,
		ActionCreate: writeElevated,
		ActionUpdate: writeElevated,
		ActionDelete: deleteAdmin,
	},
	ResourceCategories: {
		ActionRead:   readAll,
		ActionCreate: writeElevated,
		ActionUpdate: writeElevated,
		ActionDelete: deleteAdmin,
	},
	ResourceProducts: {
		ActionRead:   readAll,
		ActionCreate: writeElevated,
		ActionUpdate: writeElevated,
		ActionDelete: deleteAdmin,
	},
}

// AllowedRoles returns the allow-list for a (resource, action) pair. An
// unknown pair returns nil, which no role satisfies.
func AllowedRoles(resource string, action Action) []string {
	actions, ok := table[resource]
	if !ok {
		return nil
	}
	return actions[action]
}

// Allows reports whether roleName may perform action on resource.
func Allows(resource string, action Action, roleName string) bool {
	for _, allowed := range AllowedRoles(resource, action) {
		if allowed == roleName {
			return true
		}
	}
	return false
}
