package usecases

import (
	"image-batcher/internal/domain/dto"
	"image-batcher/internal/domain/entities"
	"image-batcher/internal/domain/repositories"
)

type HistoryService interface {
	RecordBatch(batch *entities.Batch, report []dto.ReportRow) error
	GetBatches() ([]*dto.BatchDTO, error)
	GetBatchByID(id string) (*entities.Batch, error)
	GetReport(batchID string) ([]dto.ReportRow, error)
}

type historyService struct {
	repo repositories.BatchHistoryRepository
}

func NewHistoryService(repo repositories.BatchHistoryRepository) HistoryService {
	return &historyService{
		repo: repo,
	}
}

func (s *historyService) RecordBatch(batch *entities.Batch, report []dto.ReportRow) error {
	rows := make([]*entities.BatchReportRow, 0, len(report))
	for i, r := range report {
		rows = append(rows, &entities.BatchReportRow{
			Position:         i + 1,
			OriginalName:     r.Original,
			NewName:          r.NewName,
			Width:            r.Width,
			Height:           r.Height,
			Format:           r.Format,
			ExifRemoved:      r.ExifRemoved,
			GPSPresentBefore: r.GPSPresentBefore,
		})
	}
	return s.repo.CreateBatch(batch, rows)
}

func (s *historyService) GetBatches() ([]*dto.BatchDTO, error) {
	batches, err := s.repo.GetBatches()
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BatchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, &dto.BatchDTO{
			ID:          b.ID.String(),
			Format:      b.Format,
			ItemCount:   b.ItemCount,
			ArchiveName: b.ArchiveName,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
		})
	}
	return out, nil
}

func (s *historyService) GetBatchByID(id string) (*entities.Batch, error) {
	return s.repo.GetBatchByID(id)
}

func (s *historyService) GetReport(batchID string) ([]dto.ReportRow, error) {
	rows, err := s.repo.GetReport(batchID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReportRow{
			Original:         r.OriginalName,
			NewName:          r.NewName,
			Width:            r.Width,
			Height:           r.Height,
			Format:           r.Format,
			ExifRemoved:      r.ExifRemoved,
			GPSPresentBefore: r.GPSPresentBefore,
		})
	}
	return out, nil
}
