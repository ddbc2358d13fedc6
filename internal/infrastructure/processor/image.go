package processor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // girişte GIF ilk kare decode'u için
	"image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/webp" // girişte WebP decode'u için

	"image-batcher/pkg/constants"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// DecodeImage girdi byte'larını çözer (JPEG/PNG/WebP/GIF).
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("görsel çözümlenemedi: %w", err)
	}
	return img, nil
}

// Transpose EXIF orientation değerinin ima ettiği dönüşü piksel verisine
// fiziksel olarak uygular. Tag'i okumayan istemciler de görseli doğru
// yönde görür. Asset başına bir kez, resize'dan önce çağrılır.
func Transpose(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}

// Resize hedef boyutları ResizeSpec kuralına göre hesaplar ve Lanczos ile
// yeniden örnekler. Türetilen eksen aşağı yuvarlanır, taban 1 pikseldir.
func Resize(img image.Image, mode string, value int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return img
	}

	var tw, th int
	switch mode {
	case constants.ModeWidth:
		tw = value
		th = max1(h * value / w)
	case constants.ModeHeight:
		th = value
		tw = max1(w * value / h)
	case constants.ModePercent:
		pct := value
		if pct < 1 {
			pct = 1
		}
		tw = max1(w * pct / 100)
		th = max1(h * pct / 100)
	default:
		return img
	}

	return imaging.Resize(img, tw, th, imaging.Lanczos)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// NormalizeFormat kullanıcı girdisini (jpg/jpeg/png/webp) kanonik format
// adına ve dosya uzantısına çevirir. Bilinmeyen girdiler JPEG'e düşer.
func NormalizeFormat(ext string) (string, string) {
	ext = strings.Trim(strings.ToLower(ext), ".")
	switch ext {
	case "jpg", "jpeg":
		return constants.FormatJPEG, "jpg"
	case "png":
		return constants.FormatPNG, "png"
	case "webp":
		return constants.FormatWebP, "webp"
	}
	return constants.FormatJPEG, "jpg"
}

// EncodeImage piksel verisini hedef formatta kodlar. Quality yalnızca
// JPEG/WEBP için anlamlıdır.
func EncodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case constants.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
	case constants.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case constants.FormatWebP:
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("desteklenmeyen format: %s", format)
	}
	return buf.Bytes(), nil
}
