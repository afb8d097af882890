package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTrancheNotFound = errors.New("tranche not found")

type Tranche struct {
	ID             uint      `gorm:"primaryKey"`
	EvenementID    uint      `gorm:"not null;index"`
	Debut          time.Time `gorm:"not null"`
	Fin            time.Time `gorm:"not null"`
	ValeurCoches   int       `gorm:"not null;default:1"`
	BadgeCategorie string    // empty means no badge gate
	TenantID       uint      `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TrancheDAO struct {
	db *gorm.DB
}

func NewTrancheDAO(db *gorm.DB) *TrancheDAO {
	return &TrancheDAO{
		db: db,
	}
}

func (d *TrancheDAO) Insert(ctx context.Context, tranche Tranche) (Tranche, error) {
	result := d.db.WithContext(ctx).Create(&tranche)
	if result.Error != nil {
		return Tranche{}, result.Error
	}

	return tranche, nil
}

// Update applies only the supplied columns. An empty updates map is not an
// error; the current record is returned unchanged.
func (d *TrancheDAO) Update(ctx context.Context, tenantID, id uint, updates map[string]interface{}) (Tranche, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).
			Model(&Tranche{}).
			Where("id = ? AND tenant_id = ?", id, tenantID).
			Updates(updates)
		if result.Error != nil {
			return Tranche{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Tranche{}, ErrTrancheNotFound
		}
	}

	return d.FindByID(ctx, tenantID, id)
}

// Delete is unconditional and does not cascade to inscriptions; sign-up
// rows referencing a deleted tranche are kept as historical records.
func (d *TrancheDAO) Delete(ctx context.Context, tenantID, id uint) error {
	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&Tranche{}, id)

	return result.Error
}

func (d *TrancheDAO) FindByID(ctx context.Context, tenantID, id uint) (Tranche, error) {
	var tranche Tranche

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&tranche, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tranche{}, ErrTrancheNotFound
		}

		return Tranche{}, result.Error
	}

	return tranche, nil
}

func (d *TrancheDAO) FindByEvenement(ctx context.Context, tenantID, evenementID uint) ([]Tranche, error) {
	var tranches []Tranche

	result := d.db.WithContext(ctx).
		Where("evenement_id = ? AND tenant_id = ?", evenementID, tenantID).
		Find(&tranches)
	if result.Error != nil {
		return nil, result.Error
	}

	return tranches, nil
}
