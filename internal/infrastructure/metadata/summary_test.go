package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"image-batcher/internal/infrastructure/metadata"
)

func TestSummarizeFullDocument(t *testing.T) {
	sum := metadata.Summarize(sampleDocument())

	assert.Equal(t, "Canon", sum.CameraMake)
	assert.Equal(t, "Canon EOS R5", sum.CameraModel)
	assert.Equal(t, "image-batcher", sum.Software)
	assert.Equal(t, "2023:09:10 14:23:11", sum.DateTime)
	assert.Equal(t, "RF 35mm F1.8", sum.Lens)
	assert.True(t, sum.GPSPresent)
	assert.Equal(t, "Canon Canon EOS R5", sum.Camera())
}

func TestSummarizeEmptyDocument(t *testing.T) {
	sum := metadata.Summarize(metadata.NewDocument())

	assert.Empty(t, sum.CameraMake)
	assert.Empty(t, sum.DateTime)
	assert.False(t, sum.GPSPresent)
	assert.Empty(t, sum.Camera())
}

func TestSummarizeDateFallsBackToDateTimeOriginal(t *testing.T) {
	doc := metadata.NewDocument()
	doc.Exif[metadata.TagDateTimeOriginal] = metadata.NewASCIIValue("2021:01:05 08:00:00")

	sum := metadata.Summarize(doc)
	assert.Equal(t, "2021:01:05 08:00:00", sum.DateTime)

	// Primary DateTime varsa o kazanır
	doc.Primary[metadata.TagDateTime] = metadata.NewASCIIValue("2022:12:31 23:59:59")
	sum = metadata.Summarize(doc)
	assert.Equal(t, "2022:12:31 23:59:59", sum.DateTime)
}

func TestSummarizeCameraJoin(t *testing.T) {
	doc := metadata.NewDocument()
	doc.Primary[metadata.TagModel] = metadata.NewASCIIValue("X100V")
	assert.Equal(t, "X100V", metadata.Summarize(doc).Camera())

	doc = metadata.NewDocument()
	doc.Primary[metadata.TagMake] = metadata.NewASCIIValue("Fujifilm")
	assert.Equal(t, "Fujifilm", metadata.Summarize(doc).Camera())
}

func TestSummarizeLenientText(t *testing.T) {
	doc := metadata.NewDocument()
	// İçeride NUL, sonunda padding, geçersiz UTF-8 byte'ı
	doc.Primary[metadata.TagMake] = metadata.Value{
		Type:  2,
		Count: 12,
		Data:  []byte("Ca\x00non\xFF  \x00\x00\x00"),
	}

	sum := metadata.Summarize(doc)
	assert.Equal(t, "Canon�", sum.CameraMake)
}
