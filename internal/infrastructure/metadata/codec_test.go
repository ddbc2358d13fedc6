package metadata_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-batcher/internal/infrastructure/metadata"
)

// rationalValue count adet RATIONAL içeren test alanı üretir.
func rationalValue(pairs ...[2]uint32) metadata.Value {
	data := make([]byte, 0, len(pairs)*8)
	for _, p := range pairs {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint32(b[:4], p[0])
		binary.LittleEndian.PutUint32(b[4:], p[1])
		data = append(data, b...)
	}
	return metadata.Value{Type: 5, Count: uint32(len(pairs)), Data: data}
}

func sampleDocument() *metadata.Document {
	doc := metadata.NewDocument()
	doc.Primary[metadata.TagMake] = metadata.NewASCIIValue("Canon")
	doc.Primary[metadata.TagModel] = metadata.NewASCIIValue("Canon EOS R5")
	doc.Primary[metadata.TagOrientation] = metadata.NewShortValue(6)
	doc.Primary[metadata.TagSoftware] = metadata.NewASCIIValue("image-batcher")
	doc.Primary[metadata.TagDateTime] = metadata.NewASCIIValue("2023:09:10 14:23:11")
	doc.Primary[metadata.TagCameraOwnerName] = metadata.NewASCIIValue("Ebru K.")
	doc.Exif[metadata.TagDateTimeOriginal] = metadata.NewASCIIValue("2023:09:10 14:23:11")
	doc.Exif[metadata.TagBodySerialNumber] = metadata.NewASCIIValue("SN-0042")
	doc.Exif[metadata.TagLensModel] = metadata.NewASCIIValue("RF 35mm F1.8")
	doc.Exif[metadata.TagLensSerialNumber] = metadata.NewASCIIValue("LENS-7")
	doc.GPS[0x0001] = metadata.NewASCIIValue("N")                                 // GPSLatitudeRef
	doc.GPS[0x0002] = rationalValue([2]uint32{41, 1}, [2]uint32{0, 1}, [2]uint32{5400, 100}) // GPSLatitude
	doc.GPS[0x0003] = metadata.NewASCIIValue("E")
	doc.GPS[0x0004] = rationalValue([2]uint32{29, 1}, [2]uint32{1, 1}, [2]uint32{0, 1})
	return doc
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()

	raw, err := metadata.Encode(doc)
	require.NoError(t, err)

	got := metadata.Decode(raw)
	require.False(t, got.Empty())
	assert.Equal(t, doc.Primary, got.Primary)
	assert.Equal(t, doc.Exif, got.Exif)
	assert.Equal(t, doc.GPS, got.GPS)
}

func TestEncodePreservesUnknownTags(t *testing.T) {
	doc := metadata.NewDocument()
	doc.Primary[metadata.TagMake] = metadata.NewASCIIValue("Nikon")
	// Codec'in tanımadığı tag'ler byte byte korunmalı: kısa inline bir
	// BYTE alanı ve 4 byte'a sığmayan bir UNDEFINED alanı.
	doc.Primary[0xC612] = metadata.Value{Type: 1, Count: 4, Data: []byte{1, 4, 0, 0}}
	doc.Exif[0x9286] = metadata.Value{Type: 7, Count: 16, Data: []byte("ASCII\x00\x00\x00not a lot")}

	raw, err := metadata.Encode(doc)
	require.NoError(t, err)

	got := metadata.Decode(raw)
	assert.Equal(t, doc.Primary, got.Primary)
	assert.Equal(t, doc.Exif, got.Exif)
	assert.Empty(t, got.GPS)
}

func TestEncodeWithoutSubIFDs(t *testing.T) {
	doc := metadata.NewDocument()
	doc.Primary[metadata.TagMake] = metadata.NewASCIIValue("Sony")
	doc.Primary[metadata.TagOrientation] = metadata.NewShortValue(3)

	raw, err := metadata.Encode(doc)
	require.NoError(t, err)

	got := metadata.Decode(raw)
	assert.Equal(t, doc.Primary, got.Primary)
	assert.Empty(t, got.Exif)
	assert.Empty(t, got.GPS)
}

func TestEncodeEmptyDocumentFails(t *testing.T) {
	_, err := metadata.Encode(metadata.NewDocument())
	assert.Error(t, err)

	_, err = metadata.Encode(nil)
	assert.Error(t, err)
}

func TestEncodeRejectsInconsistentValue(t *testing.T) {
	doc := metadata.NewDocument()
	doc.Primary[metadata.TagOrientation] = metadata.Value{Type: 3, Count: 2, Data: []byte{1, 0}} // 2 SHORT = 4 byte olmalı

	_, err := metadata.Encode(doc)
	assert.Error(t, err)
}

func TestDecodeGarbageIsFailSoft(t *testing.T) {
	cases := map[string][]byte{
		"nil":            nil,
		"empty":          {},
		"random":         {0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x11, 0x22, 0x33},
		"truncated jpeg": {0xFF, 0xD8, 0xFF, 0xE1, 0x00},
		"bad tiff order": []byte("XX\x2A\x00\x08\x00\x00\x00"),
		"bad magic":      []byte("II\x2B\x00\x08\x00\x00\x00"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			doc := metadata.Decode(data)
			require.NotNil(t, doc)
			assert.True(t, doc.Empty())
		})
	}
}

func TestDecodePlainJPEGHasNoMetadata(t *testing.T) {
	doc := metadata.Decode(encodeJPEG(t, 8, 8))
	require.NotNil(t, doc)
	assert.True(t, doc.Empty())
}

func TestEmbedJPEGRoundTrip(t *testing.T) {
	doc := sampleDocument()
	tiff, err := metadata.Encode(doc)
	require.NoError(t, err)

	jpg := metadata.EmbedJPEG(encodeJPEG(t, 8, 8), tiff)

	// Gömülen JPEG hâlâ çözümlenebilir olmalı
	_, err = jpeg.Decode(bytes.NewReader(jpg))
	require.NoError(t, err)

	got := metadata.Decode(jpg)
	assert.Equal(t, doc.Primary, got.Primary)
	assert.Equal(t, doc.Exif, got.Exif)
	assert.Equal(t, doc.GPS, got.GPS)
}

func TestEmbedJPEGReplacesExistingSegment(t *testing.T) {
	first := metadata.NewDocument()
	first.Primary[metadata.TagMake] = metadata.NewASCIIValue("Old")
	second := metadata.NewDocument()
	second.Primary[metadata.TagMake] = metadata.NewASCIIValue("New")

	tiff1, err := metadata.Encode(first)
	require.NoError(t, err)
	tiff2, err := metadata.Encode(second)
	require.NoError(t, err)

	jpg := metadata.EmbedJPEG(encodeJPEG(t, 4, 4), tiff1)
	jpg = metadata.EmbedJPEG(jpg, tiff2)

	got := metadata.Decode(jpg)
	v, ok := got.Primary[metadata.TagMake]
	require.True(t, ok)
	assert.Equal(t, "New", v.Text())
}

func TestEmbedJPEGNonJPEGInputUnchanged(t *testing.T) {
	data := []byte("bu bir jpeg değil")
	assert.Equal(t, data, metadata.EmbedJPEG(data, []byte{1, 2, 3}))
}

// Bağımsız bir decoder'la çapraz doğrulama: ürettiğimiz TIFF bloğunu
// goexif de aynı şekilde okuyabilmeli.
func TestEncodedTIFFReadableByGoexif(t *testing.T) {
	doc := sampleDocument()
	tiff, err := metadata.Encode(doc)
	require.NoError(t, err)

	x, err := exif.Decode(bytes.NewReader(tiff))
	require.NoError(t, err)

	makeTag, err := x.Get(exif.Make)
	require.NoError(t, err)
	makeVal, err := makeTag.StringVal()
	require.NoError(t, err)
	assert.Equal(t, "Canon", makeVal)

	dtTag, err := x.Get(exif.DateTimeOriginal)
	require.NoError(t, err)
	dtVal, err := dtTag.StringVal()
	require.NoError(t, err)
	assert.Equal(t, "2023:09:10 14:23:11", dtVal)

	_, err = x.Get(exif.GPSLatitudeRef)
	assert.NoError(t, err)
}
