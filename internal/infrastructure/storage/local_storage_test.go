package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-batcher/internal/infrastructure/storage"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ls := storage.NewLocalStorage(dir)

	path, err := ls.Save("abc_processed_images.zip", []byte("arşiv içeriği"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc_processed_images.zip"), path)

	data, err := ls.Load("abc_processed_images.zip")
	require.NoError(t, err)
	assert.Equal(t, []byte("arşiv içeriği"), data)

	require.NoError(t, ls.Delete("abc_processed_images.zip"))
	_, err = ls.Load("abc_processed_images.zip")
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageSaveOverwrites(t *testing.T) {
	ls := storage.NewLocalStorage(t.TempDir())

	_, err := ls.Save("a.zip", []byte("ilk"))
	require.NoError(t, err)
	_, err = ls.Save("a.zip", []byte("ikinci"))
	require.NoError(t, err)

	data, err := ls.Load("a.zip")
	require.NoError(t, err)
	assert.Equal(t, []byte("ikinci"), data)
}

func TestLocalStorageLoadMissing(t *testing.T) {
	ls := storage.NewLocalStorage(t.TempDir())
	_, err := ls.Load("yok.zip")
	assert.Error(t, err)
}

// Geçici dosyalar rename sonrası ortalıkta kalmamalı.
func TestLocalStorageLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	ls := storage.NewLocalStorage(dir)

	_, err := ls.Save("a.zip", []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.zip", entries[0].Name())
}
