package domain

// Role is the closed set of dashboard roles a resolved profile maps to.
// The composition layer switches exhaustively on it; there is no open-ended
// role string anywhere past the resolver.
type Role int

const (
	// RoleAnonymous means no session exists; the public landing page is shown.
	RoleAnonymous Role = iota
	RolePlatformAdmin
	RoleTenantAdmin
	RoleMember
)

func (r Role) String() string {
	switch r {
	case RolePlatformAdmin:
		return "platform_admin"
	case RoleTenantAdmin:
		return "tenant_admin"
	case RoleMember:
		return "member"
	default:
		return "anonymous"
	}
}

// Profile role values as stored by the data service.
const (
	ProfileRolePlatformAdmin = "saccoflow_admin"
	ProfileRoleTenantAdmin   = "sacco_admin"
	ProfileRoleMember        = "member"
)

// RoleFromProfile maps a stored profile role string to a Role. Unknown
// values map to RoleMember; the resolver treats that as a deliberate
// fallback, not an error.
func RoleFromProfile(role string) Role {
	switch role {
	case ProfileRolePlatformAdmin:
		return RolePlatformAdmin
	case ProfileRoleTenantAdmin:
		return RoleTenantAdmin
	default:
		return RoleMember
	}
}
