package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

var ErrEvenementNotFound = repository.ErrEvenementNotFound

type EvenementRepository interface {
	Create(ctx context.Context, evenement domain.Evenement) (domain.Evenement, error)
	Update(ctx context.Context, tenantID, id uint, nom string, date *time.Time, lieu, description string) (domain.Evenement, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (domain.Evenement, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]domain.Evenement, error)
}

type EvenementService struct {
	repo EvenementRepository
}

func NewEvenementService(repo EvenementRepository) *EvenementService {
	return &EvenementService{
		repo: repo,
	}
}

func (s *EvenementService) CreateEvenement(ctx context.Context, principal domain.Principal, evenement domain.Evenement) (domain.Evenement, error) {
	evenement.TenantID = principal.TenantID

	created, err := s.repo.Create(ctx, evenement)
	if err != nil {
		return domain.Evenement{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EvenementService) UpdateEvenement(ctx context.Context, principal domain.Principal, id uint, nom string, date *time.Time, lieu, description string) (domain.Evenement, error) {
	updated, err := s.repo.Update(ctx, principal.TenantID, id, nom, date, lieu, description)
	if err != nil {
		if errors.Is(err, ErrEvenementNotFound) {
			return domain.Evenement{}, ErrEvenementNotFound
		}

		return domain.Evenement{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EvenementService) DeleteEvenement(ctx context.Context, principal domain.Principal, id uint) error {
	if err := s.repo.Delete(ctx, principal.TenantID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EvenementService) GetEvenement(ctx context.Context, principal domain.Principal, id uint) (domain.Evenement, error) {
	evenement, err := s.repo.FindByID(ctx, principal.TenantID, id)
	if err != nil {
		if errors.Is(err, ErrEvenementNotFound) {
			return domain.Evenement{}, ErrEvenementNotFound
		}

		return domain.Evenement{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return evenement, nil
}

func (s *EvenementService) ListEvenements(ctx context.Context, principal domain.Principal) ([]domain.Evenement, error) {
	evenements, err := s.repo.FindByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTenant -> %w", err)
	}

	return evenements, nil
}
