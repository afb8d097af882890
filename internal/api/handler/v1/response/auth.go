package response

import "github.com/membora/membora-api/internal/domain"

type LoginResponse struct {
	Token  string        `json:"token"`
	Membre domain.Membre `json:"membre"`
}
