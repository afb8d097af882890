package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

var (
	ErrInscriptionNotFound = repository.ErrInscriptionNotFound

	// ErrBadgeRequired is returned when a tranche carries a badge gate the
	// member does not satisfy. No inscription is created in that case.
	ErrBadgeRequired = errors.New("membre does not hold a badge of the required categorie")
)

type InscriptionRepository interface {
	Create(ctx context.Context, inscription domain.Inscription) (domain.Inscription, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByTranche(ctx context.Context, tenantID, trancheID uint) ([]domain.Inscription, error)
	FindByMembre(ctx context.Context, tenantID, membreID uint) ([]domain.MembreInscription, error)
	Valider(ctx context.Context, tenantID, id uint) (domain.Inscription, error)
}

type SignUpTrancheRepository interface {
	FindByID(ctx context.Context, tenantID, id uint) (domain.Tranche, error)
}

type SignUpBadgeRepository interface {
	FindByMembre(ctx context.Context, tenantID, membreID uint) ([]domain.Badge, error)
}

// InscriptionService orchestrates tranche sign-ups: it enforces the badge
// gate before delegating to the inscription store.
type InscriptionService struct {
	repo        InscriptionRepository
	trancheRepo SignUpTrancheRepository
	badgeRepo   SignUpBadgeRepository
}

func NewInscriptionService(repo InscriptionRepository, trancheRepo SignUpTrancheRepository, badgeRepo SignUpBadgeRepository) *InscriptionService {
	return &InscriptionService{
		repo:        repo,
		trancheRepo: trancheRepo,
		badgeRepo:   badgeRepo,
	}
}

// SignUp creates an inscription for the member on the tranche. When the
// tranche requires a badge categorie, the member must hold at least one
// matching badge. The gate check and the insert are two separate round
// trips, not a transaction; concurrent sign-ups can both pass the gate.
func (s *InscriptionService) SignUp(ctx context.Context, principal domain.Principal, trancheID, membreID uint) (domain.Inscription, error) {
	tranche, err := s.trancheRepo.FindByID(ctx, principal.TenantID, trancheID)
	if err != nil {
		if errors.Is(err, ErrTrancheNotFound) {
			return domain.Inscription{}, ErrTrancheNotFound
		}

		return domain.Inscription{}, fmt.Errorf("s.trancheRepo.FindByID -> %w", err)
	}

	if tranche.BadgeCategorie != "" {
		badges, err := s.badgeRepo.FindByMembre(ctx, principal.TenantID, membreID)
		if err != nil {
			return domain.Inscription{}, fmt.Errorf("s.badgeRepo.FindByMembre -> %w", err)
		}

		if !holdsCategorie(badges, tranche.BadgeCategorie) {
			return domain.Inscription{}, ErrBadgeRequired
		}
	}

	created, err := s.repo.Create(ctx, domain.Inscription{
		TrancheID: tranche.ID,
		MembreID:  membreID,
		TenantID:  principal.TenantID,
	})
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Cancel removes the inscription. No business rule beyond the delete.
func (s *InscriptionService) Cancel(ctx context.Context, principal domain.Principal, inscriptionID uint) error {
	if err := s.repo.Delete(ctx, principal.TenantID, inscriptionID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Approve marks the coche as attributed. Idempotent. Role enforcement
// happens at the API boundary, not here.
func (s *InscriptionService) Approve(ctx context.Context, principal domain.Principal, inscriptionID uint) (domain.Inscription, error) {
	validated, err := s.repo.Valider(ctx, principal.TenantID, inscriptionID)
	if err != nil {
		if errors.Is(err, ErrInscriptionNotFound) {
			return domain.Inscription{}, ErrInscriptionNotFound
		}

		return domain.Inscription{}, fmt.Errorf("s.repo.Valider -> %w", err)
	}

	return validated, nil
}

func (s *InscriptionService) GetByTranche(ctx context.Context, principal domain.Principal, trancheID uint) ([]domain.Inscription, error) {
	inscriptions, err := s.repo.FindByTranche(ctx, principal.TenantID, trancheID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTranche -> %w", err)
	}

	return inscriptions, nil
}

func (s *InscriptionService) GetByMembre(ctx context.Context, principal domain.Principal, membreID uint) ([]domain.MembreInscription, error) {
	inscriptions, err := s.repo.FindByMembre(ctx, principal.TenantID, membreID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMembre -> %w", err)
	}

	return inscriptions, nil
}

func holdsCategorie(badges []domain.Badge, categorie string) bool {
	for _, b := range badges {
		if b.Categorie == categorie {
			return true
		}
	}

	return false
}
