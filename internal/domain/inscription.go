package domain

import "time"

// Inscription is a member's sign-up to a tranche. CocheAttribue flips to
// true once an organizer validates the sign-up.
type Inscription struct {
	ID            uint      `json:"id"`
	TrancheID     uint      `json:"tranche_id"`
	MembreID      uint      `json:"membre_id"`
	CocheAttribue bool      `json:"coche_attribue"`
	TenantID      uint      `json:"tenant_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MembreInscription is the read model for a member's sign-ups, annotated
// with the owning tranche's credit value and event, used for coche totals.
type MembreInscription struct {
	Inscription
	ValeurCoches int  `json:"valeur_coches"`
	EvenementID  uint `json:"evenement_id"`
}
