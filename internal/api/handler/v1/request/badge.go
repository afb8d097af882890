package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateBadgeRequest struct {
	MembreID  uint   `json:"membre_id"`
	Categorie string `json:"categorie"`
}

func (req *CreateBadgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MembreID, validation.Required),
		validation.Field(&req.Categorie, validation.Required, validation.Length(1, 100)),
	)
}
