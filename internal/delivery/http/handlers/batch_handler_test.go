package handlers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-batcher/internal/delivery/http/handlers"
	"image-batcher/internal/domain/dto"
	"image-batcher/internal/usecases"
)

func peekApp() *fiber.App {
	h := handlers.NewBatchHandler(usecases.NewBatchService(false), nil, nil, nil)
	app := fiber.New()
	app.Post("/api/v1/batch/peek", h.Peek)
	return app
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, data := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func smallJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestPeekEndpoint(t *testing.T) {
	app := peekApp()

	body, contentType := multipartBody(t, map[string][]byte{"test.jpg": smallJPEG(t)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/peek", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []dto.PeekRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "test.jpg", rows[0].File)
	assert.Equal(t, 3, rows[0].Width)
	assert.Equal(t, 2, rows[0].Height)
	assert.Equal(t, "No", rows[0].GPS)
}

func TestPeekEndpointRejectsEmptyUpload(t *testing.T) {
	app := peekApp()

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/peek", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPeekEndpointRejectsNonImageFile(t *testing.T) {
	app := peekApp()

	body, contentType := multipartBody(t, map[string][]byte{"notes.txt": []byte("metin")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/peek", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "notes.txt")
}
