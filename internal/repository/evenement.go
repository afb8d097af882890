package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository/dao"
)

var ErrEvenementNotFound = dao.ErrEvenementNotFound

type EvenementDAO interface {
	Insert(ctx context.Context, evenement dao.Evenement) (dao.Evenement, error)
	Update(ctx context.Context, tenantID, id uint, updates map[string]interface{}) (dao.Evenement, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (dao.Evenement, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]dao.Evenement, error)
}

type EvenementRepository struct {
	dao EvenementDAO
}

func NewEvenementRepository(dao EvenementDAO) *EvenementRepository {
	return &EvenementRepository{
		dao: dao,
	}
}

func (r *EvenementRepository) Create(ctx context.Context, evenement domain.Evenement) (domain.Evenement, error) {
	created, err := r.dao.Insert(ctx, dao.Evenement{
		Nom:         evenement.Nom,
		Date:        evenement.Date,
		Lieu:        evenement.Lieu,
		Description: evenement.Description,
		TenantID:    evenement.TenantID,
	})
	if err != nil {
		return domain.Evenement{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EvenementRepository) Update(ctx context.Context, tenantID, id uint, nom string, date *time.Time, lieu, description string) (domain.Evenement, error) {
	updates := map[string]interface{}{}
	if nom != "" {
		updates["nom"] = nom
	}
	if date != nil {
		updates["date"] = *date
	}
	if lieu != "" {
		updates["lieu"] = lieu
	}
	if description != "" {
		updates["description"] = description
	}

	updated, err := r.dao.Update(ctx, tenantID, id, updates)
	if err != nil {
		return domain.Evenement{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EvenementRepository) Delete(ctx context.Context, tenantID, id uint) error {
	if err := r.dao.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EvenementRepository) FindByID(ctx context.Context, tenantID, id uint) (domain.Evenement, error) {
	found, err := r.dao.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Evenement{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EvenementRepository) FindByTenant(ctx context.Context, tenantID uint) ([]domain.Evenement, error) {
	found, err := r.dao.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTenant -> %w", err)
	}

	evenements := make([]domain.Evenement, len(found))
	for i, e := range found {
		evenements[i] = r.daoToDomain(e)
	}

	return evenements, nil
}

func (r *EvenementRepository) daoToDomain(e dao.Evenement) domain.Evenement {
	return domain.Evenement{
		ID:          e.ID,
		Nom:         e.Nom,
		Date:        e.Date,
		Lieu:        e.Lieu,
		Description: e.Description,
		TenantID:    e.TenantID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
