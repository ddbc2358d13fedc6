package errors

import (
	"log"

	"image-batcher/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if be, ok := err.(*BatchError); ok {
		// Orijinal hatayı logla (debug için)
		if be.Err != nil {
			log.Printf("Batch error [%s]: %v", be.Code, be.Err)
		}

		// Status kodunu seç
		var status int
		switch be.Code {
		case "archive_not_found", "batch_not_found":
			status = fiber.StatusNotFound
		case "unsupported_token", "unsupported_format", "invalid_resize", "image_decode_failed":
			status = fiber.StatusBadRequest
		default:
			status = fiber.StatusInternalServerError
		}

		// Client'a sadece Code + Message gönder
		msg := i18n.T(be.Code)
		if msg == be.Code {
			msg = be.Message
		}
		return c.Status(status).JSON(fiber.Map{
			"error":   be.Code,
			"message": msg,
		})
	}

	// Yakalanmayan hatalar için fallback
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Sunucu hatası",
	})
}
