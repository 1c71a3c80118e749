// file: internals/helpers/db_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IsNotFound: baris tidak ada.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate mendeteksi pelanggaran unique constraint (SQLSTATE 23505).
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique")
}

// IsForeignKeyViolation mendeteksi pelanggaran FK (SQLSTATE 23503),
// misal delete buku yang masih direferensikan transaksi.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23503") ||
		strings.Contains(msg, "foreign key")
}

// JsonDBError memetakan error store di jalur BACA:
// not found → 404, unique/FK → 409, selain itu → 500
// (gagal baca bukan conflict).
func JsonDBError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	switch {
	case IsNotFound(err):
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	case IsDuplicate(err), IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusConflict, failMsg)
	default:
		return JsonError(c, fiber.StatusInternalServerError, failMsg)
	}
}

// JsonWriteError memetakan error store di jalur TULIS:
// not found → 404, sisanya 409 — tulisan yang gagal dilaporkan conflict.
func JsonWriteError(c *fiber.Ctx, err error, notFoundMsg, conflictMsg string) error {
	if IsNotFound(err) {
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return JsonError(c, fiber.StatusConflict, conflictMsg)
}
