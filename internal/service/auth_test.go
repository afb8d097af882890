package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

type fakeAuthMembreRepo struct {
	createFunc      func(ctx context.Context, membre domain.Membre) (domain.Membre, error)
	findByEmailFunc func(ctx context.Context, email string) (domain.Membre, error)
}

func (f *fakeAuthMembreRepo) Create(ctx context.Context, membre domain.Membre) (domain.Membre, error) {
	return f.createFunc(ctx, membre)
}

func (f *fakeAuthMembreRepo) FindByEmail(ctx context.Context, email string) (domain.Membre, error) {
	return f.findByEmailFunc(ctx, email)
}

func TestSignup_HashesPasswordAndDefaultsRole(t *testing.T) {
	var stored domain.Membre
	repo := &fakeAuthMembreRepo{
		createFunc: func(_ context.Context, membre domain.Membre) (domain.Membre, error) {
			stored = membre
			membre.ID = 7

			return membre, nil
		},
	}

	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.Membre{
		Email:    "alice@exemple.fr",
		Password: "s3cretpass",
		Nom:      "Alice",
		TenantID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, domain.RoleMembre, created.Role)
	assert.NotEqual(t, "s3cretpass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cretpass")))
}

func TestSignup_KeepsExplicitRole(t *testing.T) {
	repo := &fakeAuthMembreRepo{
		createFunc: func(_ context.Context, membre domain.Membre) (domain.Membre, error) {
			return membre, nil
		},
	}

	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.Membre{
		Email:    "orga@exemple.fr",
		Password: "s3cretpass",
		Role:     domain.RoleResponsable,
		TenantID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleResponsable, created.Role)
}

func TestSignup_EmailExists(t *testing.T) {
	repo := &fakeAuthMembreRepo{
		createFunc: func(_ context.Context, _ domain.Membre) (domain.Membre, error) {
			return domain.Membre{}, repository.ErrMembreEmailExists
		},
	}

	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.Membre{
		Email:    "alice@exemple.fr",
		Password: "s3cretpass",
		TenantID: 3,
	})
	assert.ErrorIs(t, err, ErrMembreEmailExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAuthMembreRepo{
		findByEmailFunc: func(_ context.Context, email string) (domain.Membre, error) {
			return domain.Membre{ID: 7, Email: email, Password: string(hash), TenantID: 3}, nil
		},
	}

	svc := NewAuthService(repo)

	membre, err := svc.Login(context.Background(), "alice@exemple.fr", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, uint(7), membre.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAuthMembreRepo{
		findByEmailFunc: func(_ context.Context, email string) (domain.Membre, error) {
			return domain.Membre{ID: 7, Email: email, Password: string(hash)}, nil
		},
	}

	svc := NewAuthService(repo)

	_, err = svc.Login(context.Background(), "alice@exemple.fr", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &fakeAuthMembreRepo{
		findByEmailFunc: func(_ context.Context, _ string) (domain.Membre, error) {
			return domain.Membre{}, repository.ErrMembreNotFound
		},
	}

	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@exemple.fr", "s3cretpass")
	assert.ErrorIs(t, err, ErrMembreNotFound)
}
