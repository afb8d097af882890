package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEvenementNotFound = errors.New("evenement not found")

type Evenement struct {
	ID          uint      `gorm:"primaryKey"`
	Nom         string    `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	Lieu        string    `gorm:"not null"`
	Description string
	TenantID    uint `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EvenementDAO struct {
	db *gorm.DB
}

func NewEvenementDAO(db *gorm.DB) *EvenementDAO {
	return &EvenementDAO{
		db: db,
	}
}

func (d *EvenementDAO) Insert(ctx context.Context, evenement Evenement) (Evenement, error) {
	result := d.db.WithContext(ctx).Create(&evenement)
	if result.Error != nil {
		return Evenement{}, result.Error
	}

	return evenement, nil
}

func (d *EvenementDAO) Update(ctx context.Context, tenantID, id uint, updates map[string]interface{}) (Evenement, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).
			Model(&Evenement{}).
			Where("id = ? AND tenant_id = ?", id, tenantID).
			Updates(updates)
		if result.Error != nil {
			return Evenement{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Evenement{}, ErrEvenementNotFound
		}
	}

	return d.FindByID(ctx, tenantID, id)
}

func (d *EvenementDAO) Delete(ctx context.Context, tenantID, id uint) error {
	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&Evenement{}, id)

	return result.Error
}

func (d *EvenementDAO) FindByID(ctx context.Context, tenantID, id uint) (Evenement, error) {
	var evenement Evenement

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&evenement, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Evenement{}, ErrEvenementNotFound
		}

		return Evenement{}, result.Error
	}

	return evenement, nil
}

func (d *EvenementDAO) FindByTenant(ctx context.Context, tenantID uint) ([]Evenement, error) {
	var evenements []Evenement

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&evenements)
	if result.Error != nil {
		return nil, result.Error
	}

	return evenements, nil
}
