package entity

// Role is the authorization class of a user
type Role string

// Roles
const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleSuperAdmin
}

// Actor is the authenticated caller of a core operation.
// It is supplied by the transport layer and passed explicitly into every use case.
type Actor struct {
	ID   uint64
	Role Role
}

// IsAdmin is true for admins and super admins
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// IsSuperAdmin is true only for super admins, who bypass registration validations
func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// IsSelf reports whether the actor is acting on their own account
func (a Actor) IsSelf(userID uint64) bool {
	return a.ID == userID
}
