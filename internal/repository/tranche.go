package repository

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository/dao"
)

var ErrTrancheNotFound = dao.ErrTrancheNotFound

type TrancheDAO interface {
	Insert(ctx context.Context, tranche dao.Tranche) (dao.Tranche, error)
	Update(ctx context.Context, tenantID, id uint, updates map[string]interface{}) (dao.Tranche, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (dao.Tranche, error)
	FindByEvenement(ctx context.Context, tenantID, evenementID uint) ([]dao.Tranche, error)
}

type TrancheRepository struct {
	dao TrancheDAO
}

func NewTrancheRepository(dao TrancheDAO) *TrancheRepository {
	return &TrancheRepository{
		dao: dao,
	}
}

func (r *TrancheRepository) Create(ctx context.Context, tranche domain.Tranche) (domain.Tranche, error) {
	created, err := r.dao.Insert(ctx, dao.Tranche{
		EvenementID:    tranche.EvenementID,
		Debut:          tranche.Debut,
		Fin:            tranche.Fin,
		ValeurCoches:   tranche.ValeurCoches,
		BadgeCategorie: tranche.BadgeCategorie,
		TenantID:       tranche.TenantID,
	})
	if err != nil {
		return domain.Tranche{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TrancheRepository) Update(ctx context.Context, tenantID, id uint, update domain.TrancheUpdate) (domain.Tranche, error) {
	updates := map[string]interface{}{}
	if update.Debut != nil {
		updates["debut"] = *update.Debut
	}
	if update.Fin != nil {
		updates["fin"] = *update.Fin
	}
	if update.ValeurCoches != nil {
		updates["valeur_coches"] = *update.ValeurCoches
	}
	if update.BadgeCategorie != nil {
		updates["badge_categorie"] = *update.BadgeCategorie
	}

	updated, err := r.dao.Update(ctx, tenantID, id, updates)
	if err != nil {
		return domain.Tranche{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TrancheRepository) Delete(ctx context.Context, tenantID, id uint) error {
	if err := r.dao.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TrancheRepository) FindByID(ctx context.Context, tenantID, id uint) (domain.Tranche, error) {
	found, err := r.dao.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Tranche{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TrancheRepository) FindByEvenement(ctx context.Context, tenantID, evenementID uint) ([]domain.Tranche, error) {
	found, err := r.dao.FindByEvenement(ctx, tenantID, evenementID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvenement -> %w", err)
	}

	tranches := make([]domain.Tranche, len(found))
	for i, t := range found {
		tranches[i] = r.daoToDomain(t)
	}

	return tranches, nil
}

func (r *TrancheRepository) daoToDomain(t dao.Tranche) domain.Tranche {
	return domain.Tranche{
		ID:             t.ID,
		EvenementID:    t.EvenementID,
		Debut:          t.Debut,
		Fin:            t.Fin,
		ValeurCoches:   t.ValeurCoches,
		BadgeCategorie: t.BadgeCategorie,
		TenantID:       t.TenantID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
