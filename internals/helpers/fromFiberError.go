package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/logger"
)

// FromDBError mengubah error (biasanya dari gorm atau Transaction) menjadi
// response JSON konsisten:
//   - *fiber.Error       → status & pesan apa adanya
//   - *ValidationError   → 422
//   - record not found   → 404 (notFoundMsg)
//   - duplicate / FK     → 409
//   - lainnya            → 500, dicatat ke log
func FromDBError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var fe *fiber.Error
	var ve *ValidationError
	switch {
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	case errors.As(err, &ve):
		return JsonValidationError(c, ve.Fields)
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Data tidak ditemukan"
		}
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return JsonError(c, fiber.StatusConflict, "Data sudah ada")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return JsonError(c, fiber.StatusConflict, "Data masih dipakai atau relasi tidak ditemukan")
	default:
		logger.Error("request error", "path", c.Path(), "err", err)
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

// ErrorHandler untuk fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromDBError(c, err, "")
}

// NewFieldError: *ValidationError untuk satu field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}
