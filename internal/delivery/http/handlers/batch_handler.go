package handlers

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"image-batcher/internal/domain/dto"
	"image-batcher/internal/domain/entities"
	"image-batcher/internal/domain/repositories"
	"image-batcher/internal/infrastructure/actionlog"
	"image-batcher/internal/usecases"
	"image-batcher/pkg/constants"
	pkgerrors "image-batcher/pkg/errors"
	"image-batcher/pkg/file"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BatchHandler struct {
	batchService   usecases.BatchService
	historyService usecases.HistoryService
	storage        repositories.ArchiveStorage
	actions        *actionlog.ActionLog
}

func NewBatchHandler(
	batchService usecases.BatchService,
	historyService usecases.HistoryService,
	storage repositories.ArchiveStorage,
	actions *actionlog.ActionLog,
) *BatchHandler {
	return &BatchHandler{
		batchService:   batchService,
		historyService: historyService,
		storage:        storage,
		actions:        actions,
	}
}

// Peek
//
// @Summary      Metadata Preview
// @Description  Returns a quick metadata peek (dimensions, camera, date, GPS presence) for the uploaded images without processing them
// @Tags         Batch
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Images (JPG/PNG/WebP/GIF)"
// @Success      200    {array}   dto.PeekRow
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /batch/peek [post]
func (h *BatchHandler) Peek(c *fiber.Ctx) error {
	assets, err := readAssets(c)
	if err != nil {
		return c.Status(400).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if len(assets) == 0 {
		return c.Status(400).JSON(dto.ErrorResponse{Error: "En az bir görsel yükleyin"})
	}

	return c.JSON(h.batchService.Peek(assets))
}

// Process
//
// @Summary      Process Batch
// @Description  Resizes, sanitizes metadata, renames and re-encodes the uploaded images, stores the resulting zip archive and returns the processing report
// @Tags         Batch
// @Accept       multipart/form-data
// @Produce      json
// @Param        files           formData  file    true   "Images (JPG/PNG/WebP/GIF)"
// @Param        resize_mode     formData  string  false  "Percent | Width | Height"  default(Percent)
// @Param        resize_value    formData  int     false  "Resize value (1-10000)"    default(50)
// @Param        output_format   formData  string  false  "jpg | png | webp"          default(jpg)
// @Param        quality         formData  int     false  "Quality for JPEG/WEBP"     default(85)
// @Param        strip_gps       formData  bool    false  "Strip GPS data"            default(true)
// @Param        strip_serials   formData  bool    false  "Strip serials/owner tags"  default(true)
// @Param        rename_pattern  formData  string  false  "Tokens: {index}, {name}, {date}"
// @Success      200             {object}  dto.ProcessResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Failure      500             {object}  dto.ErrorResponse
// @Router       /batch/process [post]
func (h *BatchHandler) Process(c *fiber.Ctx) error {
	assets, err := readAssets(c)
	if err != nil {
		return c.Status(400).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if len(assets) == 0 {
		return c.Status(400).JSON(dto.ErrorResponse{Error: "En az bir görsel yükleyin"})
	}

	spec := dto.ResizeSpec{
		Mode:  formValue(c, "resize_mode", constants.ModePercent),
		Value: formValueInt(c, "resize_value", 50),
	}
	policy := dto.OutputPolicy{
		Format:       formValue(c, "output_format", "jpg"),
		Quality:      formValueInt(c, "quality", constants.DefaultQuality),
		StripGPS:     formValueBool(c, "strip_gps", true),
		StripSerials: formValueBool(c, "strip_serials", true),
		NamePattern:  formValue(c, "rename_pattern", constants.DefaultPattern),
	}

	result, err := h.batchService.Process(assets, spec, policy)
	if err != nil {
		return pkgerrors.HandleError(c, err)
	}

	batchID := uuid.New()
	archiveName := file.MakeKey(batchID.String(), "processed_images.zip")
	if _, err := h.storage.Save(archiveName, result.Archive); err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrArchiveWrite(err))
	}
	archiveHash := file.CalculateHash(result.Archive)

	// Denetim kaydı ve eylem günlüğü best-effort'tur; batch sonucu döner
	format := constants.FormatJPEG
	if len(result.Report) > 0 {
		format = result.Report[0].Format
	}
	batch := &entities.Batch{
		ID:          batchID,
		Format:      format,
		ItemCount:   len(result.Report),
		ArchiveName: archiveName,
		ArchiveHash: archiveHash,
		Status:      constants.StatusCompleted,
	}
	if err := h.historyService.RecordBatch(batch, result.Report); err != nil {
		log.Printf("WARN: Batch geçmişi kaydedilemedi: %v", err)
	}
	h.actions.Record(c.Context(), fmt.Sprintf(
		"Processed %d images, %d outputs, format=%s.",
		len(assets), len(result.Report), policy.Format,
	))

	return c.JSON(dto.ProcessResponse{
		BatchID:     batchID.String(),
		ArchiveName: archiveName,
		ArchiveHash: archiveHash,
		ItemCount:   len(result.Report),
		Report:      result.Report,
		Skipped:     result.Skipped,
	})
}

// DownloadArchive
//
// @Summary      Download Archive
// @Description  Streams the stored zip archive of a completed batch
// @Tags         Batch
// @Produce      application/zip
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /batch/archives/{id} [get]
func (h *BatchHandler) DownloadArchive(c *fiber.Ctx) error {
	batch, err := h.historyService.GetBatchByID(c.Params("id"))
	if err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrBatchNotFound(err))
	}

	data, err := h.storage.Load(batch.ArchiveName)
	if err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrArchiveNotFound(err))
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="processed_images.zip"`)
	return c.Send(data)
}

// ListBatches
//
// @Summary      List Batches
// @Description  Returns past batch runs, newest first
// @Tags         Batch
// @Produce      json
// @Success      200  {array}   dto.BatchDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /batches [get]
func (h *BatchHandler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.historyService.GetBatches()
	if err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrInternal(err))
	}
	return c.JSON(batches)
}

// GetBatchReport
//
// @Summary      Get Batch Report
// @Description  Returns the processing report rows of a batch in input order
// @Tags         Batch
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {array}   dto.ReportRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /batches/{id}/report [get]
func (h *BatchHandler) GetBatchReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.historyService.GetBatchByID(id); err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrBatchNotFound(err))
	}

	report, err := h.historyService.GetReport(id)
	if err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrInternal(err))
	}
	return c.JSON(report)
}

// Actions
//
// @Summary      Action Log
// @Description  Returns the last 50 recorded actions, newest first
// @Tags         Batch
// @Produce      json
// @Success      200  {object}  dto.ActionsResponse
// @Router       /actions [get]
func (h *BatchHandler) Actions(c *fiber.Ctx) error {
	actions, err := h.actions.Recent(c.Context())
	if err != nil {
		return pkgerrors.HandleError(c, pkgerrors.ErrInternal(err))
	}
	return c.JSON(dto.ActionsResponse{Actions: actions})
}

// readAssets multipart form'daki görselleri sıra koruyarak okur.
func readAssets(c *fiber.Ctx) ([]dto.ImageAsset, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart form okunamadı: %w", err)
	}

	headers := form.File["files"]
	assets := make([]dto.ImageAsset, 0, len(headers))
	for _, header := range headers {
		if !file.IsImageFile(header.Filename) {
			return nil, fmt.Errorf("desteklenmeyen dosya: %s", header.Filename)
		}
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("dosya açılamadı %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("dosya okunamadı %s: %w", header.Filename, err)
		}
		assets = append(assets, dto.ImageAsset{Data: data, Name: header.Filename})
	}
	return assets, nil
}

func formValue(c *fiber.Ctx, key, def string) string {
	if v := c.FormValue(key); v != "" {
		return v
	}
	return def
}

func formValueInt(c *fiber.Ctx, key string, def int) int {
	if v := c.FormValue(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func formValueBool(c *fiber.Ctx, key string, def bool) bool {
	if v := c.FormValue(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
