package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

var (
	ErrTrancheNotFound = repository.ErrTrancheNotFound

	// ErrInvalidTimeWindow rejects tranches whose fin is not after debut.
	ErrInvalidTimeWindow = errors.New("fin must be after debut")
)

type TrancheRepository interface {
	Create(ctx context.Context, tranche domain.Tranche) (domain.Tranche, error)
	Update(ctx context.Context, tenantID, id uint, update domain.TrancheUpdate) (domain.Tranche, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (domain.Tranche, error)
	FindByEvenement(ctx context.Context, tenantID, evenementID uint) ([]domain.Tranche, error)
}

type TrancheEvenementRepository interface {
	FindByID(ctx context.Context, tenantID, id uint) (domain.Evenement, error)
}

type TrancheService struct {
	repo          TrancheRepository
	evenementRepo TrancheEvenementRepository
}

func NewTrancheService(repo TrancheRepository, evenementRepo TrancheEvenementRepository) *TrancheService {
	return &TrancheService{
		repo:          repo,
		evenementRepo: evenementRepo,
	}
}

func (s *TrancheService) CreateTranche(ctx context.Context, principal domain.Principal, tranche domain.Tranche) (domain.Tranche, error) {
	if !tranche.Fin.After(tranche.Debut) {
		return domain.Tranche{}, ErrInvalidTimeWindow
	}

	if _, err := s.evenementRepo.FindByID(ctx, principal.TenantID, tranche.EvenementID); err != nil {
		if errors.Is(err, ErrEvenementNotFound) {
			return domain.Tranche{}, ErrEvenementNotFound
		}

		return domain.Tranche{}, fmt.Errorf("s.evenementRepo.FindByID -> %w", err)
	}

	if tranche.ValeurCoches == 0 {
		tranche.ValeurCoches = 1
	}
	tranche.TenantID = principal.TenantID

	created, err := s.repo.Create(ctx, tranche)
	if err != nil {
		return domain.Tranche{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateTranche applies a partial update. Supplying no fields is not an
// error; the current record is returned. Any update touching the time
// window is validated against the effective debut/fin pair.
func (s *TrancheService) UpdateTranche(ctx context.Context, principal domain.Principal, id uint, update domain.TrancheUpdate) (domain.Tranche, error) {
	if update.Debut != nil || update.Fin != nil {
		current, err := s.repo.FindByID(ctx, principal.TenantID, id)
		if err != nil {
			if errors.Is(err, ErrTrancheNotFound) {
				return domain.Tranche{}, ErrTrancheNotFound
			}

			return domain.Tranche{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		debut, fin := current.Debut, current.Fin
		if update.Debut != nil {
			debut = *update.Debut
		}
		if update.Fin != nil {
			fin = *update.Fin
		}
		if !fin.After(debut) {
			return domain.Tranche{}, ErrInvalidTimeWindow
		}
	}

	updated, err := s.repo.Update(ctx, principal.TenantID, id, update)
	if err != nil {
		if errors.Is(err, ErrTrancheNotFound) {
			return domain.Tranche{}, ErrTrancheNotFound
		}

		return domain.Tranche{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteTranche removes the tranche only. Inscriptions referencing it are
// intentionally left in place (historical records, no cascade).
func (s *TrancheService) DeleteTranche(ctx context.Context, principal domain.Principal, id uint) error {
	if err := s.repo.Delete(ctx, principal.TenantID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *TrancheService) GetTranche(ctx context.Context, principal domain.Principal, id uint) (domain.Tranche, error) {
	tranche, err := s.repo.FindByID(ctx, principal.TenantID, id)
	if err != nil {
		if errors.Is(err, ErrTrancheNotFound) {
			return domain.Tranche{}, ErrTrancheNotFound
		}

		return domain.Tranche{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return tranche, nil
}

func (s *TrancheService) GetTranchesByEvenement(ctx context.Context, principal domain.Principal, evenementID uint) ([]domain.Tranche, error) {
	tranches, err := s.repo.FindByEvenement(ctx, principal.TenantID, evenementID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEvenement -> %w", err)
	}

	return tranches, nil
}
