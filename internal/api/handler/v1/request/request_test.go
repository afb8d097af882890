package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Email:    "alice@exemple.fr",
		Password: "s3cretpass",
		Nom:      "Alice",
		TenantID: 3,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(req *SignupRequest)
	}{
		{"missing email", func(req *SignupRequest) { req.Email = "" }},
		{"malformed email", func(req *SignupRequest) { req.Email = "not-an-email" }},
		{"missing password", func(req *SignupRequest) { req.Password = "" }},
		{"password too short", func(req *SignupRequest) { req.Password = "a1" }},
		{"password without digit", func(req *SignupRequest) { req.Password = "onlyletters" }},
		{"password without letter", func(req *SignupRequest) { req.Password = "12345678" }},
		{"missing nom", func(req *SignupRequest) { req.Nom = "" }},
		{"unknown role", func(req *SignupRequest) { req.Role = "super-admin" }},
		{"missing tenant", func(req *SignupRequest) { req.TenantID = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestSignupRequestValidate_AcceptsKnownRoles(t *testing.T) {
	for _, role := range []string{"", "membre", "responsable", "sous-admin"} {
		req := SignupRequest{
			Email:    "alice@exemple.fr",
			Password: "s3cretpass",
			Nom:      "Alice",
			Role:     role,
			TenantID: 3,
		}
		assert.NoError(t, req.Validate(), "role %q", role)
	}
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "alice@exemple.fr", Password: "s3cretpass"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Email: "", Password: "s3cretpass"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "alice@exemple.fr", Password: ""}).Validate())
}

func TestCreateTrancheRequestValidate(t *testing.T) {
	debut := time.Date(2026, 6, 13, 9, 0, 0, 0, time.UTC)
	valid := CreateTrancheRequest{
		EvenementID: 5,
		Debut:       debut,
		Fin:         debut.Add(2 * time.Hour),
	}
	assert.NoError(t, valid.Validate())

	missingEvent := valid
	missingEvent.EvenementID = 0
	assert.Error(t, missingEvent.Validate())

	missingDebut := valid
	missingDebut.Debut = time.Time{}
	assert.Error(t, missingDebut.Validate())

	missingFin := valid
	missingFin.Fin = time.Time{}
	assert.Error(t, missingFin.Validate())

	negative := valid
	negative.ValeurCoches = -1
	assert.Error(t, negative.Validate())
}

func TestUpdateTrancheRequestValidate(t *testing.T) {
	// An empty body is a valid no-op update.
	assert.NoError(t, (&UpdateTrancheRequest{}).Validate())

	valeur := 5
	assert.NoError(t, (&UpdateTrancheRequest{ValeurCoches: &valeur}).Validate())

	negative := -1
	assert.ErrorIs(t, (&UpdateTrancheRequest{ValeurCoches: &negative}).Validate(), errNegativeValeurCoches)
}

func TestCreateInscriptionRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateInscriptionRequest{TrancheID: 10}).Validate())
	// MembreID is optional; it defaults to the caller.
	assert.NoError(t, (&CreateInscriptionRequest{TrancheID: 10, MembreID: 7}).Validate())
	assert.Error(t, (&CreateInscriptionRequest{}).Validate())
}

func TestCreateBadgeRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateBadgeRequest{MembreID: 7, Categorie: "securite"}).Validate())
	assert.Error(t, (&CreateBadgeRequest{Categorie: "securite"}).Validate())
	assert.Error(t, (&CreateBadgeRequest{MembreID: 7}).Validate())
}
