package routers

import (
	"log"
	"time"

	"image-batcher/internal/delivery/http/handlers"
	"image-batcher/internal/domain/repositories"
	"image-batcher/internal/infrastructure/actionlog"
	infra_repo "image-batcher/internal/infrastructure/repositories"
	"image-batcher/internal/infrastructure/storage"
	"image-batcher/internal/usecases"
	"image-batcher/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func SetupBatchRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB, rdb *redis.Client) {
	archiveStorage := newArchiveStorage(cfg)

	historyRepo := infra_repo.NewBatchHistoryRepository(database)
	historyService := usecases.NewHistoryService(historyRepo)
	batchService := usecases.NewBatchService(cfg.Batch.ContinueOnError)
	actions := actionlog.New(rdb)

	// Saklama süresi dolan arşivler her 5 dakikada bir temizlenir
	cleanupUC := usecases.NewCleanupService(cfg.Archive.Dir)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupUC.CleanupOldArchives(time.Duration(cfg.Archive.RetentionHours) * time.Hour); err != nil {
			log.Printf("Error cleaning up old archives: %v", err)
		}
	})
	c.Start() // cron job'u başlatır

	batchHandler := handlers.NewBatchHandler(batchService, historyService, archiveStorage, actions)

	// Routes:
	api := app.Group("/api/v1")
	api.Post("/batch/peek", batchHandler.Peek)
	api.Post("/batch/process", batchHandler.Process)
	api.Get("/batch/archives/:id", batchHandler.DownloadArchive)
	api.Get("/batches", batchHandler.ListBatches)
	api.Get("/batches/:id/report", batchHandler.GetBatchReport)
	api.Get("/actions", batchHandler.Actions)
}

func newArchiveStorage(cfg *config.Config) repositories.ArchiveStorage {
	if cfg.Storage.Driver == "s3" {
		s3Storage, err := storage.NewS3Storage(cfg.Storage.S3Bucket, cfg.Storage.S3Region)
		if err != nil {
			log.Fatalf("S3 storage kurulamadı: %v", err)
		}
		return s3Storage
	}
	return storage.NewLocalStorage(cfg.Archive.Dir)
}
