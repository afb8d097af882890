package service

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
)

type BadgeRepository interface {
	Create(ctx context.Context, badge domain.Badge) (domain.Badge, error)
	FindByMembre(ctx context.Context, tenantID, membreID uint) ([]domain.Badge, error)
}

// BadgeService is append-only: badges are granted, never updated or
// revoked in the current scope.
type BadgeService struct {
	repo       BadgeRepository
	membreRepo MembreRepository
}

func NewBadgeService(repo BadgeRepository, membreRepo MembreRepository) *BadgeService {
	return &BadgeService{
		repo:       repo,
		membreRepo: membreRepo,
	}
}

func (s *BadgeService) CreateBadge(ctx context.Context, principal domain.Principal, membreID uint, categorie string) (domain.Badge, error) {
	if _, err := s.membreRepo.FindByID(ctx, principal.TenantID, membreID); err != nil {
		return domain.Badge{}, fmt.Errorf("s.membreRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Badge{
		MembreID:  membreID,
		Categorie: categorie,
		TenantID:  principal.TenantID,
	})
	if err != nil {
		return domain.Badge{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *BadgeService) GetBadgesByMembre(ctx context.Context, principal domain.Principal, membreID uint) ([]domain.Badge, error) {
	badges, err := s.repo.FindByMembre(ctx, principal.TenantID, membreID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMembre -> %w", err)
	}

	return badges, nil
}
