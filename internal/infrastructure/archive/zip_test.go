package archive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-batcher/internal/infrastructure/archive"
)

func readEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = content
	}
	return entries
}

func TestWriterProducesReadableZip(t *testing.T) {
	w := archive.NewWriter()

	name, err := w.Add("a.jpg", []byte("birinci"))
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", name)

	name, err = w.Add("b.jpg", []byte("ikinci"))
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", name)

	assert.Equal(t, 2, w.Count())

	data, err := w.Close()
	require.NoError(t, err)

	entries := readEntries(t, data)
	assert.Equal(t, []byte("birinci"), entries["a.jpg"])
	assert.Equal(t, []byte("ikinci"), entries["b.jpg"])
}

func TestWriterSuffixesDuplicateNames(t *testing.T) {
	w := archive.NewWriter()

	names := make([]string, 0, 3)
	for i, content := range []string{"x", "y", "z"} {
		name, err := w.Add("photo.jpg", []byte(content))
		require.NoError(t, err, i)
		names = append(names, name)
	}

	assert.Equal(t, []string{"photo.jpg", "photo_2.jpg", "photo_3.jpg"}, names)

	data, err := w.Close()
	require.NoError(t, err)

	entries := readEntries(t, data)
	require.Len(t, entries, 3)
	assert.Equal(t, []byte("x"), entries["photo.jpg"])
	assert.Equal(t, []byte("y"), entries["photo_2.jpg"])
	assert.Equal(t, []byte("z"), entries["photo_3.jpg"])
}

func TestWriterPreservesEntryOrder(t *testing.T) {
	w := archive.NewWriter()
	for _, name := range []string{"c.png", "a.png", "b.png"} {
		_, err := w.Add(name, []byte(name))
		require.NoError(t, err)
	}

	data, err := w.Close()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var order []string
	for _, f := range zr.File {
		order = append(order, f.Name)
	}
	// Ekleme sırası korunur, alfabetik sıraya çekilmez
	assert.Equal(t, []string{"c.png", "a.png", "b.png"}, order)
}

func TestEmptyWriterClosesClean(t *testing.T) {
	w := archive.NewWriter()
	assert.Equal(t, 0, w.Count())

	data, err := w.Close()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
