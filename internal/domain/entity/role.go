// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
	// RoleFarmer indicates an account holding a farmer profile.
	RoleFarmer Role = "farmer"
	// RoleBuyer indicates an account holding a buyer profile.
	RoleBuyer Role = "buyer"
	// RoleLogistics indicates a logistics partner.
	RoleLogistics Role = "logistics"
	// RoleFinance indicates a financial institution.
	RoleFinance Role = "finance"
	// RoleGuest is the role every registered account starts with.
	RoleGuest Role = "guest"
)

// roleTransitions lists, per current role, the roles reachable through profile creation.
var roleTransitions = map[Role]Roles{
	RoleGuest: {RoleFarmer, RoleBuyer},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFarmer, RoleBuyer, RoleLogistics, RoleFinance, RoleGuest:
		return true
	default:
		return false
	}
}

// IsProfileRole reports whether the role is backed by a profile record.
func (r Role) IsProfileRole() bool {
	return r == RoleFarmer || r == RoleBuyer
}

// CanTransitionTo reports whether an account holding r may be moved to target.
// Staying in the same role is always allowed.
func (r Role) CanTransitionTo(target Role) bool {
	if r == target {
		return true
	}

	return roleTransitions[r].Contains(target)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
