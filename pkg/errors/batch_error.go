package errors

import "fmt"

type BatchError struct {
	Code    string
	Message string
	Err     error
}

func (e *BatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

var (
	ErrImageDecode = func(err error) *BatchError {
		return &BatchError{Code: "image_decode_failed", Message: "Görsel çözümlenemedi", Err: err}
	}
	ErrUnsupportedFormat = func(err error) *BatchError {
		return &BatchError{Code: "unsupported_format", Message: "Desteklenmeyen çıktı formatı", Err: err}
	}
	ErrInvalidResize = func(err error) *BatchError {
		return &BatchError{Code: "invalid_resize", Message: "Geçersiz boyutlandırma değeri", Err: err}
	}
	ErrImageEncode = func(err error) *BatchError {
		return &BatchError{Code: "image_encode_failed", Message: "Görsel kodlanamadı", Err: err}
	}
	ErrArchiveWrite = func(err error) *BatchError {
		return &BatchError{Code: "archive_write_failed", Message: "Arşive yazılamadı", Err: err}
	}
	ErrArchiveNotFound = func(err error) *BatchError {
		return &BatchError{Code: "archive_not_found", Message: "Arşiv bulunamadı", Err: err}
	}
	ErrBatchNotFound = func(err error) *BatchError {
		return &BatchError{Code: "batch_not_found", Message: "Batch kaydı bulunamadı", Err: err}
	}
	ErrInternal = func(err error) *BatchError {
		return &BatchError{Code: "internal_error", Message: "Sunucu hatası", Err: err}
	}
)

// ErrUnsupportedToken şablondaki bilinmeyen token'ı isimlendirir; handler
// kullanıcıya hangi token'ın hatalı olduğunu bu mesajla gösterir.
func ErrUnsupportedToken(token string) *BatchError {
	return &BatchError{
		Code:    "unsupported_token",
		Message: fmt.Sprintf("Desteklenmeyen şablon token'ı: {%s}", token),
	}
}
