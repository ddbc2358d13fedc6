// Package archive işlenen görselleri tek bir zip konteynerine toplar.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Writer bellek içi, deflate sıkıştırmalı bir zip kurar. Aynı isim ikinci
// kez gelirse "_2", "_3"... eklenir; her entry benzersiz kalır.
type Writer struct {
	buf   bytes.Buffer
	zw    *zip.Writer
	names map[string]int
	count int
}

func NewWriter() *Writer {
	w := &Writer{names: map[string]int{}}
	w.zw = zip.NewWriter(&w.buf)
	return w
}

// Add veriyi benzersizleştirilmiş isimle yeni bir entry olarak yazar ve
// kullanılan ismi döner.
func (w *Writer) Add(name string, data []byte) (string, error) {
	unique := w.uniqueName(name)
	entry, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   unique,
		Method: zip.Deflate,
	})
	if err != nil {
		return "", fmt.Errorf("zip entry açılamadı: %w", err)
	}
	if _, err := entry.Write(data); err != nil {
		return "", fmt.Errorf("zip entry yazılamadı: %w", err)
	}
	w.count++
	return unique, nil
}

func (w *Writer) Count() int {
	return w.count
}

// Close zip'i finalize eder ve tamamlanmış konteyner byte'larını döner.
func (w *Writer) Close() ([]byte, error) {
	if err := w.zw.Close(); err != nil {
		return nil, fmt.Errorf("zip kapatılamadı: %w", err)
	}
	return w.buf.Bytes(), nil
}

func (w *Writer) uniqueName(name string) string {
	n := w.names[name]
	w.names[name] = n + 1
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%d%s", base, n+1, ext)
}
