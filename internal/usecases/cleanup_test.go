package usecases_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-batcher/internal/usecases"
)

func TestCleanupOldArchives(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "old_processed_images.zip")
	newFile := filepath.Join(dir, "new_processed_images.zip")
	require.NoError(t, os.WriteFile(oldFile, []byte("eski"), 0o644))
	require.NoError(t, os.WriteFile(newFile, []byte("yeni"), 0o644))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	svc := usecases.NewCleanupService(dir)
	require.NoError(t, svc.CleanupOldArchives(24*time.Hour))

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err), "süresi dolan arşiv silinmeli")
	_, err = os.Stat(newFile)
	assert.NoError(t, err, "taze arşiv yerinde kalmalı")
}

func TestCleanupSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "alt_klasor")
	require.NoError(t, os.Mkdir(sub, 0o755))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(sub, stale, stale))

	svc := usecases.NewCleanupService(dir)
	require.NoError(t, svc.CleanupOldArchives(24*time.Hour))

	_, err := os.Stat(sub)
	assert.NoError(t, err)
}

func TestCleanupMissingDirReturnsError(t *testing.T) {
	svc := usecases.NewCleanupService(filepath.Join(t.TempDir(), "yok"))
	assert.Error(t, svc.CleanupOldArchives(time.Hour))
}
