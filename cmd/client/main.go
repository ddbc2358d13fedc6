package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"image-batcher/internal/domain/dto"
	"image-batcher/pkg/file"
)

// Klasördeki görselleri toplayıp /batch/process endpoint'ine gönderen
// basit test istemcisi. Dönen arşivi de indirir.
func main() {
	server := flag.String("server", "http://localhost:3000/api/v1", "Server base URL")
	dir := flag.String("dir", ".", "İşlenecek görsellerin bulunduğu klasör")
	out := flag.String("out", "processed_images.zip", "İndirilen arşivin yazılacağı yol")
	resizeMode := flag.String("resize-mode", "Percent", "Percent | Width | Height")
	resizeValue := flag.Int("resize-value", 50, "Resize değeri")
	format := flag.String("format", "jpg", "jpg | png | webp")
	quality := flag.Int("quality", 85, "JPEG/WEBP kalitesi")
	pattern := flag.String("pattern", "", "Yeniden adlandırma şablonu, örn: img_{index}_{date}")
	peekOnly := flag.Bool("peek", false, "Sadece metadata önizlemesi, işleme yapılmaz")
	flag.Parse()

	paths, err := collectImages(*dir)
	if err != nil {
		log.Fatalf("Klasör okunamadı: %v\n", err)
	}
	if len(paths) == 0 {
		log.Fatalf("%s içinde görsel bulunamadı\n", *dir)
	}
	fmt.Printf("Sunucu: %s\n", *server)
	fmt.Printf("%d görsel bulundu\n", len(paths))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Fatalf("Dosya okunamadı %s: %v\n", p, err)
		}
		part, err := writer.CreateFormFile("files", filepath.Base(p))
		if err != nil {
			log.Fatalf("Form dosyası oluşturulamadı: %v\n", err)
		}
		if _, err := part.Write(data); err != nil {
			log.Fatalf("Form dosyasına yazılamadı: %v\n", err)
		}
	}

	endpoint := "/batch/process"
	if *peekOnly {
		endpoint = "/batch/peek"
	} else {
		writer.WriteField("resize_mode", *resizeMode)
		writer.WriteField("resize_value", fmt.Sprintf("%d", *resizeValue))
		writer.WriteField("output_format", *format)
		writer.WriteField("quality", fmt.Sprintf("%d", *quality))
		if *pattern != "" {
			writer.WriteField("rename_pattern", *pattern)
		}
	}
	writer.Close()

	resp, err := http.Post(
		strings.TrimRight(*server, "/")+endpoint,
		writer.FormDataContentType(),
		&body,
	)
	if err != nil {
		log.Fatalf("İstek gönderilemedi: %v\n", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Yanıt okunamadı: %v\n", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Sunucu hatası (%d): %s\n", resp.StatusCode, string(raw))
	}

	if *peekOnly {
		var rows []dto.PeekRow
		if err := json.Unmarshal(raw, &rows); err != nil {
			log.Fatalf("Yanıt çözümlenemedi: %v\n", err)
		}
		for _, r := range rows {
			if r.Error != "" {
				fmt.Printf("%-30s HATA: %s\n", r.File, r.Error)
				continue
			}
			fmt.Printf("%-30s %dx%d  %-25s %-20s GPS=%s\n",
				r.File, r.Width, r.Height, r.Camera, r.Date, r.GPS)
		}
		return
	}

	var result dto.ProcessResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		log.Fatalf("Yanıt çözümlenemedi: %v\n", err)
	}
	fmt.Printf("Batch ID: %s\n", result.BatchID)
	fmt.Printf("Arşiv: %s (sha256=%s)\n", result.ArchiveName, result.ArchiveHash)
	for _, row := range result.Report {
		fmt.Printf("%-30s -> %-30s %dx%d exif_removed=%v gps=%s\n",
			row.Original, row.NewName, row.Width, row.Height, row.ExifRemoved, row.GPSPresentBefore)
	}
	for _, sk := range result.Skipped {
		fmt.Printf("%-30s ATLANDI: %s\n", sk.Name, sk.Error)
	}

	if err := downloadArchive(*server, result.BatchID, *out); err != nil {
		log.Fatalf("Arşiv indirilemedi: %v\n", err)
	}
	fmt.Printf("Arşiv kaydedildi: %s\n", *out)
}

func collectImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !file.IsImageFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

func downloadArchive(server, batchID, out string) error {
	resp, err := http.Get(strings.TrimRight(server, "/") + "/batch/archives/" + batchID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("beklenmeyen durum kodu: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
