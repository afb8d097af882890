package domain

import "time"

type Article struct {
	ID        uint      `json:"id"`
	Titre     string    `json:"titre"`
	Contenu   string    `json:"contenu"`
	Categorie string    `json:"categorie"`
	TenantID  uint      `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
