package domain

// Role represents an animal's battlefield role
type Role string

const (
	RoleTank    Role = "TANK"
	RoleAttack  Role = "ATTACK"
	RoleSupport Role = "SUPPORT"
)

// AllRoles contains all valid roles in slot order
var AllRoles = []Role{RoleTank, RoleAttack, RoleSupport}

// SlotRoles maps team slot positions (1-3) to the role they require.
// Slot order is fixed: tank leads, attack second, support last.
var SlotRoles = map[int]Role{
	1: RoleTank,
	2: RoleAttack,
	3: RoleSupport,
}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleTank, RoleAttack, RoleSupport:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a user-friendly display name for the role
func (r Role) DisplayName() string {
	switch r {
	case RoleTank:
		return "Tank"
	case RoleAttack:
		return "Attack"
	case RoleSupport:
		return "Support"
	default:
		return string(r)
	}
}
