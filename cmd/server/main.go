package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "image-batcher/docs"

	"image-batcher/pkg/config"
	consts "image-batcher/pkg/constants"
	"image-batcher/pkg/errors/i18n"

	"image-batcher/internal/delivery/http/routers"
	"image-batcher/internal/infrastructure/db"

	_ "image-batcher/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

// @title        Image Batcher API
// @version      1.0
// @description  Batch image resize, metadata sanitization and archive service
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	if err := i18n.Load(cfg.Batch.Locale); err != nil {
		log.Printf("i18n yüklenemedi (%s), hata kodları ham haliyle dönecek: %v", cfg.Batch.Locale, err)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("DB bağlantısı başarısız: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
	})

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatalf("sql.DB alınamadı: %v", err)
	}

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	} else if err := db.AutoMigrate(database); err != nil {
		// goose kullanılmıyorsa geliştirme için gorm şemayı kendisi kurar
		log.Fatalf("AutoMigrate başarısız: %v", err)
	}

	config.EnsureDirs(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Batch.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupBatchRoutes(app, cfg, database, rdb)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown sinyali alındı, server kapatılıyor...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}
	log.Println("Server düzgün bir şekilde kapatıldı")
}
