package repository

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository/dao"
)

var ErrInscriptionNotFound = dao.ErrInscriptionNotFound

type InscriptionDAO interface {
	Insert(ctx context.Context, inscription dao.Inscription) (dao.Inscription, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (dao.Inscription, error)
	FindByTranche(ctx context.Context, tenantID, trancheID uint) ([]dao.Inscription, error)
	FindByMembre(ctx context.Context, tenantID, membreID uint) ([]dao.MembreInscription, error)
	Valider(ctx context.Context, tenantID, id uint) (dao.Inscription, error)
}

type InscriptionRepository struct {
	dao InscriptionDAO
}

func NewInscriptionRepository(dao InscriptionDAO) *InscriptionRepository {
	return &InscriptionRepository{
		dao: dao,
	}
}

func (r *InscriptionRepository) Create(ctx context.Context, inscription domain.Inscription) (domain.Inscription, error) {
	created, err := r.dao.Insert(ctx, dao.Inscription{
		TrancheID:     inscription.TrancheID,
		MembreID:      inscription.MembreID,
		CocheAttribue: false,
		TenantID:      inscription.TenantID,
	})
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InscriptionRepository) Delete(ctx context.Context, tenantID, id uint) error {
	if err := r.dao.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *InscriptionRepository) FindByTranche(ctx context.Context, tenantID, trancheID uint) ([]domain.Inscription, error) {
	found, err := r.dao.FindByTranche(ctx, tenantID, trancheID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTranche -> %w", err)
	}

	inscriptions := make([]domain.Inscription, len(found))
	for i, in := range found {
		inscriptions[i] = r.daoToDomain(in)
	}

	return inscriptions, nil
}

func (r *InscriptionRepository) FindByMembre(ctx context.Context, tenantID, membreID uint) ([]domain.MembreInscription, error) {
	found, err := r.dao.FindByMembre(ctx, tenantID, membreID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMembre -> %w", err)
	}

	rows := make([]domain.MembreInscription, len(found))
	for i, in := range found {
		rows[i] = domain.MembreInscription{
			Inscription: domain.Inscription{
				ID:            in.ID,
				TrancheID:     in.TrancheID,
				MembreID:      in.MembreID,
				CocheAttribue: in.CocheAttribue,
				TenantID:      in.TenantID,
				CreatedAt:     in.CreatedAt,
				UpdatedAt:     in.UpdatedAt,
			},
			ValeurCoches: in.ValeurCoches,
			EvenementID:  in.EvenementID,
		}
	}

	return rows, nil
}

func (r *InscriptionRepository) Valider(ctx context.Context, tenantID, id uint) (domain.Inscription, error) {
	validated, err := r.dao.Valider(ctx, tenantID, id)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("r.dao.Valider -> %w", err)
	}

	return r.daoToDomain(validated), nil
}

func (r *InscriptionRepository) daoToDomain(in dao.Inscription) domain.Inscription {
	return domain.Inscription{
		ID:            in.ID,
		TrancheID:     in.TrancheID,
		MembreID:      in.MembreID,
		CocheAttribue: in.CocheAttribue,
		TenantID:      in.TenantID,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}
