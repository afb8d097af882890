package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

var (
	ErrMembreEmailExists = repository.ErrMembreEmailExists
	ErrWrongPassword     = errors.New("wrong password")
)

type AuthMembreRepository interface {
	Create(ctx context.Context, membre domain.Membre) (domain.Membre, error)
	FindByEmail(ctx context.Context, email string) (domain.Membre, error)
}

type AuthService struct {
	repo AuthMembreRepository
}

func NewAuthService(repo AuthMembreRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Signup(ctx context.Context, membre domain.Membre) (domain.Membre, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(membre.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Membre{}, err
	}
	membre.Password = string(hash)

	if membre.Role == "" {
		membre.Role = domain.RoleMembre
	}

	created, err := s.repo.Create(ctx, membre)
	if err != nil {
		return domain.Membre{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Membre, error) {
	membre, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrMembreNotFound) {
			return domain.Membre{}, ErrMembreNotFound
		}

		return domain.Membre{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(membre.Password), []byte(password)); err != nil {
		return domain.Membre{}, ErrWrongPassword
	}

	return membre, nil
}
