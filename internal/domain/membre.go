package domain

import "time"

const (
	RoleMembre      = "membre"
	RoleResponsable = "responsable"
	RoleSousAdmin   = "sous-admin"
)

type Membre struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Nom       string    `json:"nom"`
	Role      string    `json:"role"`
	TenantID  uint      `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the authenticated identity carried through every service
// call, extracted from the verified JWT claims. It replaces any ambient
// request-scoped user state.
type Principal struct {
	MembreID uint   `json:"membre_id"`
	Role     string `json:"role"`
	TenantID uint   `json:"tenant_id"`
}

// CanManage reports whether the principal holds an organizer role.
func (p Principal) CanManage() bool {
	return p.Role == RoleResponsable || p.Role == RoleSousAdmin
}
