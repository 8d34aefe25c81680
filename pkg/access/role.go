package access

import "strings"

type Role string

const (
	RoleSuperAdmin     Role = "superadmin"
	RoleAgencyAdmin    Role = "agencyadmin"
	RoleFranchiseAdmin Role = "franchisesadmin"
	RoleAccountant     Role = "accountant"
	RoleFreelancer     Role = "freelancer"
)

// legacy spelling still sent by older clients
const legacyFranchiseAdmin = "franchiseadmin"

var knownRoles = map[Role]bool{
	RoleSuperAdmin:     true,
	RoleAgencyAdmin:    true,
	RoleFranchiseAdmin: true,
	RoleAccountant:     true,
	RoleFreelancer:     true,
}

// NormalizeRole lowercases the input and folds the legacy franchise spelling.
func NormalizeRole(raw string) Role {
	r := strings.ToLower(strings.TrimSpace(raw))
	if r == legacyFranchiseAdmin {
		return RoleFranchiseAdmin
	}
	return Role(r)
}

func (r Role) Valid() bool {
	return knownRoles[r]
}

func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// CanProvision reports whether a user with role r may create a sub-user with role child.
func (r Role) CanProvision(child Role) bool {
	switch r {
	case RoleSuperAdmin:
		return child.Valid() && child != RoleSuperAdmin
	case RoleAgencyAdmin, RoleFranchiseAdmin:
		return child == RoleAccountant || child == RoleFranchiseAdmin || child == RoleFreelancer
	default:
		return false
	}
}

// SelfRegistrable reports whether the role may be chosen on public registration.
func (r Role) SelfRegistrable() bool {
	return r == RoleAgencyAdmin || r == RoleFranchiseAdmin || r == RoleFreelancer
}
