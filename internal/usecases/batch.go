package usecases

import (
	"errors"
	"fmt"
	"log"

	"image-batcher/internal/domain/dto"
	"image-batcher/internal/infrastructure/archive"
	"image-batcher/internal/infrastructure/metadata"
	"image-batcher/internal/infrastructure/processor"
	"image-batcher/internal/pkg/naming"
	"image-batcher/pkg/constants"
	pkgerrors "image-batcher/pkg/errors"
)

type BatchService interface {
	Peek(assets []dto.ImageAsset) []dto.PeekRow
	Process(assets []dto.ImageAsset, spec dto.ResizeSpec, policy dto.OutputPolicy) (*dto.BatchResult, error)
}

type batchService struct {
	// false: ilk bozuk görsel tüm batch'i durdurur, arşiv üretilmez.
	// true: bozuk girdiler atlanır ve Skipped listesinde raporlanır.
	continueOnError bool
}

func NewBatchService(continueOnError bool) BatchService {
	return &batchService{
		continueOnError: continueOnError,
	}
}

// Peek işlemeden önce hızlı metadata önizlemesi döner. Çözülemeyen asset
// sadece kendi satırını hata mesajıyla doldurur, kalanları etkilemez.
func (s *batchService) Peek(assets []dto.ImageAsset) []dto.PeekRow {
	rows := make([]dto.PeekRow, 0, len(assets))
	for _, asset := range assets {
		img, err := processor.DecodeImage(asset.Data)
		if err != nil {
			rows = append(rows, dto.PeekRow{File: asset.Name, Error: err.Error()})
			continue
		}

		doc := metadata.Decode(asset.Data)
		if o := doc.Orientation(); o > 1 {
			img = processor.Transpose(img, o)
		}
		sum := metadata.Summarize(doc)
		bounds := img.Bounds()

		gps := constants.GPSNo
		if sum.GPSPresent {
			gps = constants.GPSYes
		}
		rows = append(rows, dto.PeekRow{
			File:   asset.Name,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Camera: sum.Camera(),
			Date:   sum.DateTime,
			GPS:    gps,
		})
	}
	return rows
}

// Process asset listesini sırayla işler: decode, transpose, summarize,
// sanitize, resize, rename, re-encode, arşive yaz, rapor satırı ekle.
// Arşiv ve rapor aynı sırayı ve sayıyı paylaşır.
func (s *batchService) Process(assets []dto.ImageAsset, spec dto.ResizeSpec, policy dto.OutputPolicy) (*dto.BatchResult, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	formatName, ext := processor.NormalizeFormat(policy.Format)
	quality := policy.Quality
	if quality < 1 || quality > 100 {
		quality = constants.DefaultQuality
	}
	pattern := policy.NamePattern
	if pattern == "" {
		pattern = constants.DefaultPattern
	}

	zw := archive.NewWriter()
	report := make([]dto.ReportRow, 0, len(assets))
	var skipped []dto.SkippedAsset

	for idx, asset := range assets {
		row, data, err := s.processOne(idx+1, asset, spec, policy, formatName, ext, quality, pattern)
		if err != nil {
			// Şablon hatası kullanıcı ayarı hatasıdır, her zaman batch'i durdurur
			var be *pkgerrors.BatchError
			if errors.As(err, &be) && be.Code == "unsupported_token" {
				return nil, err
			}
			if s.continueOnError {
				log.Printf("WARN: %s atlandı: %v", asset.Name, err)
				skipped = append(skipped, dto.SkippedAsset{Name: asset.Name, Error: err.Error()})
				continue
			}
			return nil, err
		}

		usedName, aerr := zw.Add(row.NewName, data)
		if aerr != nil {
			return nil, pkgerrors.ErrArchiveWrite(aerr)
		}
		row.NewName = usedName
		report = append(report, row)
	}

	archiveBytes, err := zw.Close()
	if err != nil {
		return nil, pkgerrors.ErrArchiveWrite(err)
	}

	return &dto.BatchResult{
		Archive: archiveBytes,
		Report:  report,
		Skipped: skipped,
	}, nil
}

func (s *batchService) processOne(index int, asset dto.ImageAsset, spec dto.ResizeSpec, policy dto.OutputPolicy, formatName, ext string, quality int, pattern string) (dto.ReportRow, []byte, error) {
	// Metadata decode fail-soft'tur; piksel decode değildir.
	doc := metadata.Decode(asset.Data)
	img, err := processor.DecodeImage(asset.Data)
	if err != nil {
		return dto.ReportRow{}, nil, pkgerrors.ErrImageDecode(err)
	}

	// Orientation transpose: asset başına bir kez, resize ve summarize'dan önce
	if o := doc.Orientation(); o > 1 {
		img = processor.Transpose(img, o)
	}
	doc.DropOrientation()

	sum := metadata.Summarize(doc)
	sanitized := metadata.Sanitize(doc, policy.StripGPS, policy.StripSerials)

	resized := processor.Resize(img, spec.Mode, spec.Value)
	bounds := resized.Bounds()

	base, err := naming.Build(pattern, index, asset.Name, sum.DateTime)
	if err != nil {
		return dto.ReportRow{}, nil, err
	}
	newName := base + "." + ext

	out, err := processor.EncodeImage(resized, formatName, quality)
	if err != nil {
		return dto.ReportRow{}, nil, pkgerrors.ErrImageEncode(err)
	}

	// Sanitize edilmiş metadata yalnızca JPEG çıktıya gömülür; encode
	// başarısızsa gömmeden devam edilir (format kısıtı, bilinçli).
	embedded := false
	if formatName == constants.FormatJPEG && !sanitized.Empty() {
		if tiff, encErr := metadata.Encode(sanitized); encErr == nil {
			out = metadata.EmbedJPEG(out, tiff)
			embedded = true
		} else {
			log.Printf("WARN: %s için metadata kodlanamadı, gömme atlanıyor: %v", asset.Name, encErr)
		}
	}

	gps := constants.GPSNo
	if sum.GPSPresent {
		gps = constants.GPSYes
	}

	row := dto.ReportRow{
		Original: asset.Name,
		NewName:  newName,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   formatName,
		// best-effort: girişte metadata vardı ve çıktı artık taşımıyor
		ExifRemoved:      !doc.Empty() && !embedded,
		GPSPresentBefore: gps,
	}
	return row, out, nil
}

func validateSpec(spec dto.ResizeSpec) error {
	switch spec.Mode {
	case constants.ModePercent, constants.ModeWidth, constants.ModeHeight:
	default:
		return pkgerrors.ErrInvalidResize(fmt.Errorf("bilinmeyen mod: %q", spec.Mode))
	}
	if spec.Value < 1 || spec.Value > constants.MaxResizeValue {
		return pkgerrors.ErrInvalidResize(fmt.Errorf("değer 1-%d aralığında olmalı: %d", constants.MaxResizeValue, spec.Value))
	}
	return nil
}
