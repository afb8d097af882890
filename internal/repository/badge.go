package repository

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository/dao"
)

type BadgeDAO interface {
	Insert(ctx context.Context, badge dao.Badge) (dao.Badge, error)
	FindByMembre(ctx context.Context, tenantID, membreID uint) ([]dao.Badge, error)
}

type BadgeRepository struct {
	dao BadgeDAO
}

func NewBadgeRepository(dao BadgeDAO) *BadgeRepository {
	return &BadgeRepository{
		dao: dao,
	}
}

func (r *BadgeRepository) Create(ctx context.Context, badge domain.Badge) (domain.Badge, error) {
	created, err := r.dao.Insert(ctx, dao.Badge{
		MembreID:  badge.MembreID,
		Categorie: badge.Categorie,
		TenantID:  badge.TenantID,
	})
	if err != nil {
		return domain.Badge{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BadgeRepository) FindByMembre(ctx context.Context, tenantID, membreID uint) ([]domain.Badge, error) {
	found, err := r.dao.FindByMembre(ctx, tenantID, membreID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMembre -> %w", err)
	}

	badges := make([]domain.Badge, len(found))
	for i, b := range found {
		badges[i] = r.daoToDomain(b)
	}

	return badges, nil
}

func (r *BadgeRepository) daoToDomain(b dao.Badge) domain.Badge {
	return domain.Badge{
		ID:        b.ID,
		MembreID:  b.MembreID,
		Categorie: b.Categorie,
		TenantID:  b.TenantID,
		CreatedAt: b.CreatedAt,
	}
}
