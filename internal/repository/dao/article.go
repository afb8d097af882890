package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

type Article struct {
	ID        uint   `gorm:"primaryKey"`
	Titre     string `gorm:"not null"`
	Contenu   string `gorm:"not null"`
	Categorie string
	TenantID  uint `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ArticleDAO struct {
	db *gorm.DB
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{
		db: db,
	}
}

func (d *ArticleDAO) Insert(ctx context.Context, article Article) (Article, error) {
	result := d.db.WithContext(ctx).Create(&article)
	if result.Error != nil {
		return Article{}, result.Error
	}

	return article, nil
}

func (d *ArticleDAO) Update(ctx context.Context, tenantID, id uint, updates map[string]interface{}) (Article, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).
			Model(&Article{}).
			Where("id = ? AND tenant_id = ?", id, tenantID).
			Updates(updates)
		if result.Error != nil {
			return Article{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Article{}, ErrArticleNotFound
		}
	}

	return d.FindByID(ctx, tenantID, id)
}

func (d *ArticleDAO) Delete(ctx context.Context, tenantID, id uint) error {
	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&Article{}, id)

	return result.Error
}

func (d *ArticleDAO) FindByID(ctx context.Context, tenantID, id uint) (Article, error) {
	var article Article

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&article, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Article{}, ErrArticleNotFound
		}

		return Article{}, result.Error
	}

	return article, nil
}

func (d *ArticleDAO) FindByTenant(ctx context.Context, tenantID uint) ([]Article, error) {
	var articles []Article

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}
