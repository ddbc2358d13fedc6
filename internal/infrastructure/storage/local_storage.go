package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"image-batcher/internal/pkg/fileutils"
)

type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Save(name string, data []byte) (string, error) {
	fullPath := filepath.Join(l.BasePath, name)

	if err := fileutils.WriteFileAtomic(fullPath, data); err != nil {
		return "", fmt.Errorf("arşiv yazılamadı: %w", err)
	}

	return fullPath, nil
}

func (l *LocalStorage) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.BasePath, name))
}

func (l *LocalStorage) Delete(name string) error {
	return os.Remove(filepath.Join(l.BasePath, name))
}
