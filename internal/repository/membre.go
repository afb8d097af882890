package repository

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository/dao"
)

var (
	ErrMembreEmailExists = dao.ErrMembreEmailExists
	ErrMembreNotFound    = dao.ErrMembreNotFound
)

type MembreDAO interface {
	Insert(ctx context.Context, membre dao.Membre) (dao.Membre, error)
	FindByID(ctx context.Context, tenantID, id uint) (dao.Membre, error)
	FindByEmail(ctx context.Context, email string) (dao.Membre, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]dao.Membre, error)
}

type MembreRepository struct {
	dao MembreDAO
}

func NewMembreRepository(dao MembreDAO) *MembreRepository {
	return &MembreRepository{
		dao: dao,
	}
}

func (r *MembreRepository) Create(ctx context.Context, membre domain.Membre) (domain.Membre, error) {
	created, err := r.dao.Insert(ctx, dao.Membre{
		Email:    membre.Email,
		Password: membre.Password,
		Nom:      membre.Nom,
		Role:     membre.Role,
		TenantID: membre.TenantID,
	})
	if err != nil {
		return domain.Membre{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MembreRepository) FindByID(ctx context.Context, tenantID, id uint) (domain.Membre, error) {
	found, err := r.dao.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Membre{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MembreRepository) FindByEmail(ctx context.Context, email string) (domain.Membre, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Membre{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MembreRepository) FindByTenant(ctx context.Context, tenantID uint) ([]domain.Membre, error) {
	found, err := r.dao.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTenant -> %w", err)
	}

	membres := make([]domain.Membre, len(found))
	for i, m := range found {
		membres[i] = r.daoToDomain(m)
	}

	return membres, nil
}

func (r *MembreRepository) daoToDomain(m dao.Membre) domain.Membre {
	return domain.Membre{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Nom:       m.Nom,
		Role:      m.Role,
		TenantID:  m.TenantID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
