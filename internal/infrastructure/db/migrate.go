package db

import (
	"image-batcher/internal/domain/entities"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate( //* Migrate edilecek tüm tablolar entity içerisinden eklenmeli
		&entities.Batch{},
		&entities.BatchReportRow{},
	)
}
