package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository"
)

var ErrArticleNotFound = repository.ErrArticleNotFound

type ArticleRepository interface {
	Create(ctx context.Context, article domain.Article) (domain.Article, error)
	Update(ctx context.Context, tenantID, id uint, titre, contenu, categorie string) (domain.Article, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (domain.Article, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]domain.Article, error)
}

type ArticleService struct {
	repo ArticleRepository
}

func NewArticleService(repo ArticleRepository) *ArticleService {
	return &ArticleService{
		repo: repo,
	}
}

func (s *ArticleService) CreateArticle(ctx context.Context, principal domain.Principal, article domain.Article) (domain.Article, error) {
	article.TenantID = principal.TenantID

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		return domain.Article{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, principal domain.Principal, id uint, titre, contenu, categorie string) (domain.Article, error) {
	updated, err := s.repo.Update(ctx, principal.TenantID, id, titre, contenu, categorie)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return domain.Article{}, ErrArticleNotFound
		}

		return domain.Article{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, principal domain.Principal, id uint) error {
	if err := s.repo.Delete(ctx, principal.TenantID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ArticleService) GetArticle(ctx context.Context, principal domain.Principal, id uint) (domain.Article, error) {
	article, err := s.repo.FindByID(ctx, principal.TenantID, id)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return domain.Article{}, ErrArticleNotFound
		}

		return domain.Article{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return article, nil
}

func (s *ArticleService) ListArticles(ctx context.Context, principal domain.Principal) ([]domain.Article, error) {
	articles, err := s.repo.FindByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTenant -> %w", err)
	}

	return articles, nil
}
