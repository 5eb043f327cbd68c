// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the storefront.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"
	// RoleAdmin may manage the catalog, all orders and users.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole converts a claim or request value to a Role, defaulting to RoleCustomer.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleCustomer
}
