package constants

const (
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusInProgress = "in_progress"
	StatusOK         = "ok"
)

// Çıktı formatları ve resize modları
const (
	FormatJPEG = "JPEG"
	FormatPNG  = "PNG"
	FormatWebP = "WEBP"

	ModePercent = "Percent"
	ModeWidth   = "Width"
	ModeHeight  = "Height"
)

const (
	GPSYes = "Yes"
	GPSNo  = "No"
)

const (
	DefaultQuality = 85
	DefaultPattern = "img_{index}_{date}"
	MaxResizeValue = 10000
)
