package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errNegativeValeurCoches = errors.New("valeur_coches must be no less than 0")

type CreateTrancheRequest struct {
	EvenementID    uint      `json:"evenement_id"`
	Debut          time.Time `json:"debut"`
	Fin            time.Time `json:"fin"`
	ValeurCoches   int       `json:"valeur_coches,omitempty"`
	BadgeCategorie string    `json:"badge_categorie,omitempty"`
}

func (req *CreateTrancheRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EvenementID, validation.Required),
		validation.Field(&req.Debut, validation.Required),
		validation.Field(&req.Fin, validation.Required),
		validation.Field(&req.ValeurCoches, validation.Min(0)),
		validation.Field(&req.BadgeCategorie, validation.Length(0, 100)),
	)
}

// UpdateTrancheRequest carries only the fields to change; absent fields
// are left untouched. An empty body is accepted.
type UpdateTrancheRequest struct {
	Debut          *time.Time `json:"debut,omitempty"`
	Fin            *time.Time `json:"fin,omitempty"`
	ValeurCoches   *int       `json:"valeur_coches,omitempty"`
	BadgeCategorie *string    `json:"badge_categorie,omitempty"`
}

func (req *UpdateTrancheRequest) Validate() error {
	if req.ValeurCoches != nil && *req.ValeurCoches < 0 {
		return errNegativeValeurCoches
	}

	return nil
}
