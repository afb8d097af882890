package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Membre{},
		&Evenement{},
		&Tranche{},
		&Badge{},
		&Inscription{},
		&Article{},
	)
}
