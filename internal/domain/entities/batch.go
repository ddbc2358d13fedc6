package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Batch struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Format      string    `gorm:"type:varchar(10)"`
	ItemCount   int
	ArchiveName string
	ArchiveHash string `gorm:"type:varchar(64)"`
	Status      string `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
}

type BatchReportRow struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID          uuid.UUID `gorm:"type:uuid;index"`
	Position         int
	OriginalName     string
	NewName          string
	Width            int
	Height           int
	Format           string `gorm:"type:varchar(10)"`
	ExifRemoved      bool
	GPSPresentBefore string `gorm:"type:varchar(3)"`
}

func (b *Batch) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

func (r *BatchReportRow) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
