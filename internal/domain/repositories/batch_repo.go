package repositories

import "image-batcher/internal/domain/entities"

// BatchHistoryRepository tamamlanan batch koşularının denetim kaydını tutar.
type BatchHistoryRepository interface {
	CreateBatch(batch *entities.Batch, rows []*entities.BatchReportRow) error
	GetBatches() ([]*entities.Batch, error)
	GetBatchByID(id string) (*entities.Batch, error)
	GetReport(batchID string) ([]*entities.BatchReportRow, error)
}
