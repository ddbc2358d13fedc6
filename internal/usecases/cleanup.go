package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

type CleanupService interface {
	CleanupOldArchives(maxAge time.Duration) error
}

type cleanupService struct {
	archiveDir string
}

func NewCleanupService(archiveDir string) CleanupService {
	return &cleanupService{
		archiveDir: archiveDir,
	}
}

// CleanupOldArchives saklama süresi dolan arşiv dosyalarını diskten siler.
func (s *cleanupService) CleanupOldArchives(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.archiveDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			path := filepath.Join(s.archiveDir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("Eski arşiv silinemedi %s: %v", path, err)
				continue
			}
			log.Printf("INFO: Eski arşiv silindi: %s", path)
		}
	}
	return nil
}
