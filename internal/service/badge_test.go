package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

type fakeBadgeRepo struct {
	createFunc       func(ctx context.Context, badge domain.Badge) (domain.Badge, error)
	findByMembreFunc func(ctx context.Context, tenantID, membreID uint) ([]domain.Badge, error)
}

func (f *fakeBadgeRepo) Create(ctx context.Context, badge domain.Badge) (domain.Badge, error) {
	return f.createFunc(ctx, badge)
}

func (f *fakeBadgeRepo) FindByMembre(ctx context.Context, tenantID, membreID uint) ([]domain.Badge, error) {
	return f.findByMembreFunc(ctx, tenantID, membreID)
}

type fakeMembreRepo struct {
	findByIDFunc     func(ctx context.Context, tenantID, id uint) (domain.Membre, error)
	findByTenantFunc func(ctx context.Context, tenantID uint) ([]domain.Membre, error)
}

func (f *fakeMembreRepo) FindByID(ctx context.Context, tenantID, id uint) (domain.Membre, error) {
	return f.findByIDFunc(ctx, tenantID, id)
}

func (f *fakeMembreRepo) FindByTenant(ctx context.Context, tenantID uint) ([]domain.Membre, error) {
	return f.findByTenantFunc(ctx, tenantID)
}

func TestCreateBadge_Success(t *testing.T) {
	repo := &fakeBadgeRepo{
		createFunc: func(_ context.Context, badge domain.Badge) (domain.Badge, error) {
			badge.ID = 4

			return badge, nil
		},
	}
	membreRepo := &fakeMembreRepo{
		findByIDFunc: func(_ context.Context, tenantID, id uint) (domain.Membre, error) {
			return domain.Membre{ID: id, TenantID: tenantID}, nil
		},
	}

	svc := NewBadgeService(repo, membreRepo)

	created, err := svc.CreateBadge(context.Background(), managerPrincipal, 7, "securite")
	require.NoError(t, err)
	assert.Equal(t, uint(4), created.ID)
	assert.Equal(t, uint(7), created.MembreID)
	assert.Equal(t, "securite", created.Categorie)
	assert.Equal(t, uint(3), created.TenantID)
}

func TestCreateBadge_MembreNotFound(t *testing.T) {
	repo := &fakeBadgeRepo{
		createFunc: func(_ context.Context, _ domain.Badge) (domain.Badge, error) {
			t.Fatal("no badge must be granted to an unknown membre")

			return domain.Badge{}, nil
		},
	}
	membreRepo := &fakeMembreRepo{
		findByIDFunc: func(_ context.Context, _, _ uint) (domain.Membre, error) {
			return domain.Membre{}, repository.ErrMembreNotFound
		},
	}

	svc := NewBadgeService(repo, membreRepo)

	_, err := svc.CreateBadge(context.Background(), managerPrincipal, 999, "securite")
	assert.ErrorIs(t, err, ErrMembreNotFound)
}

func TestGetBadgesByMembre(t *testing.T) {
	repo := &fakeBadgeRepo{
		findByMembreFunc: func(_ context.Context, tenantID, membreID uint) ([]domain.Badge, error) {
			return []domain.Badge{
				{ID: 1, MembreID: membreID, Categorie: "cuisine", TenantID: tenantID},
				{ID: 2, MembreID: membreID, Categorie: "securite", TenantID: tenantID},
			}, nil
		},
	}

	svc := NewBadgeService(repo, &fakeMembreRepo{})

	badges, err := svc.GetBadgesByMembre(context.Background(), testPrincipal, 7)
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.Equal(t, "cuisine", badges[0].Categorie)
	assert.Equal(t, "securite", badges[1].Categorie)
}
