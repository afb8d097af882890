package domain

import "time"

// Tranche is a bookable time slot within an event. When BadgeCategorie is
// non-empty, only members holding a badge of that categorie may sign up.
type Tranche struct {
	ID             uint      `json:"id"`
	EvenementID    uint      `json:"evenement_id"`
	Debut          time.Time `json:"debut"`
	Fin            time.Time `json:"fin"`
	ValeurCoches   int       `json:"valeur_coches"`
	BadgeCategorie string    `json:"badge_categorie,omitempty"`
	TenantID       uint      `json:"tenant_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TrancheUpdate carries a partial update; nil fields are left untouched.
type TrancheUpdate struct {
	Debut          *time.Time
	Fin            *time.Time
	ValeurCoches   *int
	BadgeCategorie *string
}

// IsEmpty reports whether the update carries no field at all, in which
// case the store returns the current record unchanged.
func (u TrancheUpdate) IsEmpty() bool {
	return u.Debut == nil && u.Fin == nil && u.ValeurCoches == nil && u.BadgeCategorie == nil
}
