package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Badge struct {
	ID        uint   `gorm:"primaryKey"`
	MembreID  uint   `gorm:"not null;index"`
	Categorie string `gorm:"not null"`
	TenantID  uint   `gorm:"not null;index"`
	CreatedAt time.Time
}

type BadgeDAO struct {
	db *gorm.DB
}

func NewBadgeDAO(db *gorm.DB) *BadgeDAO {
	return &BadgeDAO{
		db: db,
	}
}

func (d *BadgeDAO) Insert(ctx context.Context, badge Badge) (Badge, error) {
	result := d.db.WithContext(ctx).Create(&badge)
	if result.Error != nil {
		return Badge{}, result.Error
	}

	return badge, nil
}

func (d *BadgeDAO) FindByMembre(ctx context.Context, tenantID, membreID uint) ([]Badge, error) {
	var badges []Badge

	result := d.db.WithContext(ctx).
		Where("membre_id = ? AND tenant_id = ?", membreID, tenantID).
		Find(&badges)
	if result.Error != nil {
		return nil, result.Error
	}

	return badges, nil
}
