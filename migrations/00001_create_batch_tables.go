package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

// +goose Up
// +goose StatementBegin
func Up(tx *sql.Tx) error {
	// Batch tablosu:
	createBatchTable := `
	CREATE TABLE batches (
		id UUID PRIMARY KEY,
		format VARCHAR(10) NOT NULL,
		item_count INTEGER NOT NULL,
		archive_name VARCHAR(500) NOT NULL,
		archive_hash VARCHAR(64) NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createBatchTable); err != nil {
		return fmt.Errorf("could not create batches table: %w", err)
	}

	// Rapor satırları tablosu:
	createReportRowTable := `
	CREATE TABLE batch_report_rows (
		id UUID PRIMARY KEY,
		batch_id UUID NOT NULL,
		position INTEGER NOT NULL,
		original_name VARCHAR(255) NOT NULL,
		new_name VARCHAR(255) NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		format VARCHAR(10) NOT NULL,
		exif_removed BOOLEAN NOT NULL,
		gps_present_before VARCHAR(3) NOT NULL
	);
	CREATE INDEX idx_batch_report_rows_batch_id ON batch_report_rows (batch_id);
	`
	if _, err := tx.Exec(createReportRowTable); err != nil {
		return fmt.Errorf("could not create batch_report_rows table: %w", err)
	}

	return nil
}

// +goose StatementEnd

// +goose Down
// +goose StatementBegin
func Down(tx *sql.Tx) error {
	// Tabloları silme işlemini ters sırada yap.
	dropTables := []string{"batch_report_rows", "batches"}
	for _, table := range dropTables {
		if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", table, err)
		}
	}
	return nil
}

// +goose StatementEnd
