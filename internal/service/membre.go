package service

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

var ErrMembreNotFound = repository.ErrMembreNotFound

type MembreRepository interface {
	FindByID(ctx context.Context, tenantID, id uint) (domain.Membre, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]domain.Membre, error)
}

type MembreService struct {
	repo MembreRepository
}

func NewMembreService(repo MembreRepository) *MembreService {
	return &MembreService{
		repo: repo,
	}
}

func (s *MembreService) GetMembre(ctx context.Context, principal domain.Principal, id uint) (domain.Membre, error) {
	membre, err := s.repo.FindByID(ctx, principal.TenantID, id)
	if err != nil {
		return domain.Membre{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return membre, nil
}

func (s *MembreService) ListMembres(ctx context.Context, principal domain.Principal) ([]domain.Membre, error) {
	membres, err := s.repo.FindByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTenant -> %w", err)
	}

	return membres, nil
}
