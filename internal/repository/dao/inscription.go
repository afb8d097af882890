package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInscriptionNotFound = errors.New("inscription not found")

// Inscription has no uniqueness constraint on (tranche_id, membre_id):
// duplicate sign-ups are possible. Known defect kept for compatibility.
type Inscription struct {
	ID            uint `gorm:"primaryKey"`
	TrancheID     uint `gorm:"not null;index"`
	MembreID      uint `gorm:"not null;index"`
	CocheAttribue bool `gorm:"not null;default:false"`
	TenantID      uint `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MembreInscription is the join row returned by FindByMembre: the sign-up
// plus the owning tranche's credit value and event.
type MembreInscription struct {
	ID            uint      `gorm:"column:id"`
	TrancheID     uint      `gorm:"column:tranche_id"`
	MembreID      uint      `gorm:"column:membre_id"`
	CocheAttribue bool      `gorm:"column:coche_attribue"`
	TenantID      uint      `gorm:"column:tenant_id"`
	ValeurCoches  int       `gorm:"column:valeur_coches"`
	EvenementID   uint      `gorm:"column:evenement_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

type InscriptionDAO struct {
	db *gorm.DB
}

func NewInscriptionDAO(db *gorm.DB) *InscriptionDAO {
	return &InscriptionDAO{
		db: db,
	}
}

func (d *InscriptionDAO) Insert(ctx context.Context, inscription Inscription) (Inscription, error) {
	result := d.db.WithContext(ctx).Create(&inscription)
	if result.Error != nil {
		return Inscription{}, result.Error
	}

	return inscription, nil
}

func (d *InscriptionDAO) Delete(ctx context.Context, tenantID, id uint) error {
	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&Inscription{}, id)

	return result.Error
}

func (d *InscriptionDAO) FindByID(ctx context.Context, tenantID, id uint) (Inscription, error) {
	var inscription Inscription

	result := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&inscription, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Inscription{}, ErrInscriptionNotFound
		}

		return Inscription{}, result.Error
	}

	return inscription, nil
}

func (d *InscriptionDAO) FindByTranche(ctx context.Context, tenantID, trancheID uint) ([]Inscription, error) {
	var inscriptions []Inscription

	result := d.db.WithContext(ctx).
		Where("tranche_id = ? AND tenant_id = ?", trancheID, tenantID).
		Find(&inscriptions)
	if result.Error != nil {
		return nil, result.Error
	}

	return inscriptions, nil
}

func (d *InscriptionDAO) FindByMembre(ctx context.Context, tenantID, membreID uint) ([]MembreInscription, error) {
	var rows []MembreInscription

	result := d.db.WithContext(ctx).
		Table("inscriptions").
		Select("inscriptions.*, tranches.valeur_coches, tranches.evenement_id").
		Joins("JOIN tranches ON tranches.id = inscriptions.tranche_id").
		Where("inscriptions.membre_id = ? AND inscriptions.tenant_id = ?", membreID, tenantID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Valider marks the coche as attributed. Validating an already-validated
// inscription is a no-op, not an error.
func (d *InscriptionDAO) Valider(ctx context.Context, tenantID, id uint) (Inscription, error) {
	result := d.db.WithContext(ctx).
		Model(&Inscription{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("coche_attribue", true)
	if result.Error != nil {
		return Inscription{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Inscription{}, ErrInscriptionNotFound
	}

	return d.FindByID(ctx, tenantID, id)
}
