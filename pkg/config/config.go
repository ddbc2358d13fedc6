package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Batch    BatchConfig
	Archive  ArchiveConfig
	Storage  StorageConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type BatchConfig struct {
	MaxFileSize     int64 // bytes
	ContinueOnError bool  // false => tek bozuk görsel tüm batch'i durdurur
	Locale          string
}

type ArchiveConfig struct {
	Dir            string
	RetentionHours int
}

type StorageConfig struct {
	Driver   string // "local" | "s3"
	S3Bucket string
	S3Region string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Batch: BatchConfig{
			MaxFileSize:     getEnvAsInt64("BATCH_MAX_FILE_SIZE", 200*1024*1024), // 200MB
			ContinueOnError: getEnvAsBool("BATCH_CONTINUE_ON_ERROR", false),
			Locale:          getEnv("BATCH_LOCALE", "tr"),
		},
		Archive: ArchiveConfig{
			Dir:            getEnv("ARCHIVE_DIR", "archives"),
			RetentionHours: getEnvAsInt("ARCHIVE_RETENTION_HOURS", 24),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", "local"),
			S3Bucket: getEnv("S3_BUCKET", ""),
			S3Region: getEnv("S3_REGION", "eu-central-1"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "image_batcher"),
		},
	}

	// Proje kökü:
	projectRoot, err := findProjectRoot()
	if err != nil {
		panic(err)
	}

	// Arşiv klasörünü proje köküne göre oluşturmak için:
	config.Archive.Dir = filepath.Join(projectRoot, "cmd", "server", config.Archive.Dir)

	return config
}

func EnsureDirs(cfg *Config) {
	if err := os.MkdirAll(cfg.Archive.Dir, 0755); err != nil {
		panic(err)
	}
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
