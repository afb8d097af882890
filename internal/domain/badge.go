package domain

import "time"

// Badge is a categorized qualification held by a member. Badges are
// append-only; there is no update or delete.
type Badge struct {
	ID        uint      `json:"id"`
	MembreID  uint      `json:"membre_id"`
	Categorie string    `json:"categorie"`
	TenantID  uint      `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}
