package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProcessResponse struct {
	BatchID     string         `json:"batch_id"`
	ArchiveName string         `json:"archive_name"`
	ArchiveHash string         `json:"archive_hash"`
	ItemCount   int            `json:"item_count"`
	Report      []ReportRow    `json:"report"`
	Skipped     []SkippedAsset `json:"skipped,omitempty"`
}

type BatchDTO struct {
	ID          string    `json:"id"`
	Format      string    `json:"format"`
	ItemCount   int       `json:"item_count"`
	ArchiveName string    `json:"archive_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ActionsResponse struct {
	Actions []string `json:"actions"`
}
