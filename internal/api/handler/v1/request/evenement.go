package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEvenementRequest struct {
	Nom         string `json:"nom"`
	Date        string `json:"date" format:"DD/MM/YYYY"`
	Lieu        string `json:"lieu"`
	Description string `json:"description,omitempty"`
}

func (req *CreateEvenementRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Lieu, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type UpdateEvenementRequest struct {
	Nom         string `json:"nom,omitempty"`
	Date        string `json:"date,omitempty" format:"DD/MM/YYYY"`
	Lieu        string `json:"lieu,omitempty"`
	Description string `json:"description,omitempty"`
}

func (req *UpdateEvenementRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Length(2, 100)),
		validation.Field(&req.Lieu, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
