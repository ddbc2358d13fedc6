package dto

// ImageAsset tek bir yüklenen görselin ham halidir. Batch süresince
// orchestrator'a aittir, batch bitince tutulmaz.
type ImageAsset struct {
	Data []byte
	Name string
}

type ResizeSpec struct {
	Mode  string `json:"mode"`  // Percent | Width | Height
	Value int    `json:"value"` // >= 1
}

type OutputPolicy struct {
	Format       string `json:"format"`  // jpg | png | webp
	Quality      int    `json:"quality"` // 1-100, sadece JPEG/WEBP için anlamlı
	StripGPS     bool   `json:"strip_gps"`
	StripSerials bool   `json:"strip_serials"`
	NamePattern  string `json:"name_pattern"`
}

type ReportRow struct {
	Original         string `json:"original"`
	NewName          string `json:"new_name"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	Format           string `json:"format"`
	ExifRemoved      bool   `json:"exif_removed"`
	GPSPresentBefore string `json:"gps_present_before"` // "Yes" | "No"
}

// SkippedAsset sadece ContinueOnError modunda dolar; arşive girmeyen
// bozuk girdileri raporlar.
type SkippedAsset struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type BatchResult struct {
	Archive []byte
	Report  []ReportRow
	Skipped []SkippedAsset
}

type PeekRow struct {
	File   string `json:"file"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Camera string `json:"camera,omitempty"`
	Date   string `json:"date,omitempty"`
	GPS    string `json:"gps,omitempty"`
	Error  string `json:"error,omitempty"`
}
