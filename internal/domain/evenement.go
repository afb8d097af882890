package domain

import "time"

type Evenement struct {
	ID          uint      `json:"id"`
	Nom         string    `json:"nom"`
	Date        time.Time `json:"date"`
	Lieu        string    `json:"lieu"`
	Description string    `json:"description"`
	TenantID    uint      `json:"tenant_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
