package repositories

import (
	"image-batcher/internal/domain/entities"
	"image-batcher/internal/domain/repositories"

	"gorm.io/gorm"
)

type batchHistoryRepository struct {
	db *gorm.DB
}

func NewBatchHistoryRepository(db *gorm.DB) repositories.BatchHistoryRepository {
	return &batchHistoryRepository{
		db: db,
	}
}

// CreateBatch batch kaydını ve rapor satırlarını tek transaction'da yazar.
func (r *batchHistoryRepository) CreateBatch(batch *entities.Batch, rows []*entities.BatchReportRow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return err
		}
		for _, row := range rows {
			row.BatchID = batch.ID
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *batchHistoryRepository) GetBatches() ([]*entities.Batch, error) {
	var batches []*entities.Batch
	if err := r.db.Order("created_at DESC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchHistoryRepository) GetBatchByID(id string) (*entities.Batch, error) {
	var batch entities.Batch
	if err := r.db.First(&batch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchHistoryRepository) GetReport(batchID string) ([]*entities.BatchReportRow, error) {
	var rows []*entities.BatchReportRow
	if err := r.db.Where("batch_id = ?", batchID).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
