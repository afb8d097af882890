package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateInscriptionRequest struct {
	TrancheID uint `json:"tranche_id"`
	// MembreID defaults to the authenticated member when omitted.
	MembreID uint `json:"membre_id,omitempty"`
}

func (req *CreateInscriptionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TrancheID, validation.Required),
	)
}
