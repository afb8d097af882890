package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMembreEmailExists = errors.New("membre already exists")
	ErrMembreNotFound    = errors.New("membre not found")
)

type Membre struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Nom      string `gorm:"not null"`
	Role     string `gorm:"not null"` // "membre", "responsable" or "sous-admin"
	TenantID uint   `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MembreDAO struct {
	db *gorm.DB
}

func NewMembreDAO(db *gorm.DB) *MembreDAO {
	return &MembreDAO{
		db: db,
	}
}

func (d *MembreDAO) Insert(ctx context.Context, membre Membre) (Membre, error) {
	result := d.db.WithContext(ctx).Create(&membre)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_membres_email"`) {
			return Membre{}, ErrMembreEmailExists
		}

		return Membre{}, result.Error
	}

	return membre, nil
}

func (d *MembreDAO) FindByID(ctx context.Context, tenantID, id uint) (Membre, error) {
	var membre Membre

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&membre, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Membre{}, ErrMembreNotFound
		}

		return Membre{}, result.Error
	}

	return membre, nil
}

func (d *MembreDAO) FindByEmail(ctx context.Context, email string) (Membre, error) {
	var membre Membre

	result := d.db.WithContext(ctx).First(&membre, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Membre{}, ErrMembreNotFound
		}

		return Membre{}, result.Error
	}

	return membre, nil
}

func (d *MembreDAO) FindByTenant(ctx context.Context, tenantID uint) ([]Membre, error) {
	var membres []Membre

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&membres)
	if result.Error != nil {
		return nil, result.Error
	}

	return membres, nil
}
