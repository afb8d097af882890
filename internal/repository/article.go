package repository

import (
	"context"
	"fmt"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/repository/dao"
)

var ErrArticleNotFound = dao.ErrArticleNotFound

type ArticleDAO interface {
	Insert(ctx context.Context, article dao.Article) (dao.Article, error)
	Update(ctx context.Context, tenantID, id uint, updates map[string]interface{}) (dao.Article, error)
	Delete(ctx context.Context, tenantID, id uint) error
	FindByID(ctx context.Context, tenantID, id uint) (dao.Article, error)
	FindByTenant(ctx context.Context, tenantID uint) ([]dao.Article, error)
}

type ArticleRepository struct {
	dao ArticleDAO
}

func NewArticleRepository(dao ArticleDAO) *ArticleRepository {
	return &ArticleRepository{
		dao: dao,
	}
}

func (r *ArticleRepository) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	created, err := r.dao.Insert(ctx, dao.Article{
		Titre:     article.Titre,
		Contenu:   article.Contenu,
		Categorie: article.Categorie,
		TenantID:  article.TenantID,
	})
	if err != nil {
		return domain.Article{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ArticleRepository) Update(ctx context.Context, tenantID, id uint, titre, contenu, categorie string) (domain.Article, error) {
	updates := map[string]interface{}{}
	if titre != "" {
		updates["titre"] = titre
	}
	if contenu != "" {
		updates["contenu"] = contenu
	}
	if categorie != "" {
		updates["categorie"] = categorie
	}

	updated, err := r.dao.Update(ctx, tenantID, id, updates)
	if err != nil {
		return domain.Article{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ArticleRepository) Delete(ctx context.Context, tenantID, id uint) error {
	if err := r.dao.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, tenantID, id uint) (domain.Article, error) {
	found, err := r.dao.FindByID(ctx, tenantID, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ArticleRepository) FindByTenant(ctx context.Context, tenantID uint) ([]domain.Article, error) {
	found, err := r.dao.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTenant -> %w", err)
	}

	articles := make([]domain.Article, len(found))
	for i, a := range found {
		articles[i] = r.daoToDomain(a)
	}

	return articles, nil
}

func (r *ArticleRepository) daoToDomain(a dao.Article) domain.Article {
	return domain.Article{
		ID:        a.ID,
		Titre:     a.Titre,
		Contenu:   a.Contenu,
		Categorie: a.Categorie,
		TenantID:  a.TenantID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
