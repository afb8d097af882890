package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateArticleRequest struct {
	Titre     string `json:"titre"`
	Contenu   string `json:"contenu"`
	Categorie string `json:"categorie,omitempty"`
}

func (req *CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Titre, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Contenu, validation.Required),
		validation.Field(&req.Categorie, validation.Length(0, 100)),
	)
}

type UpdateArticleRequest struct {
	Titre     string `json:"titre,omitempty"`
	Contenu   string `json:"contenu,omitempty"`
	Categorie string `json:"categorie,omitempty"`
}

func (req *UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Titre, validation.Length(2, 200)),
		validation.Field(&req.Categorie, validation.Length(0, 100)),
	)
}
