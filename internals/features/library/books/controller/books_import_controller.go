// internals/features/library/books/controller/books_import_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"perpusku_backend/internals/constants"
	dto "perpusku_backend/internals/features/library/books/dto"
	service "perpusku_backend/internals/features/library/books/service"
	helper "perpusku_backend/internals/helpers"
)

// =========================================================
// IMPORT - POST /books/import?title&authors&isbn&publisher&pages
// Import non-atomik: buku yang sudah masuk TIDAK di-rollback
// kalau halaman feed berikutnya gagal (at-least-once).
// =========================================================
func (h *BooksController) Import(c *fiber.Ctx) error {
	target := constants.DefaultImportCount
	if raw := strings.TrimSpace(c.Query("pages")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter pages tidak valid")
		}
		target = n
	}

	filters := service.ImportFilters{
		Title:     strings.TrimSpace(c.Query("title")),
		Authors:   strings.TrimSpace(c.Query("authors")),
		ISBN:      strings.TrimSpace(c.Query("isbn")),
		Publisher: strings.TrimSpace(c.Query("publisher")),
	}

	imported, err := service.ImportBooks(c.UserContext(), h.Feed, h.Catalog, filters, target)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeedExhausted):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAmbiguousISBN):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case helper.IsDuplicate(err) || helper.IsForeignKeyViolation(err):
			return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan buku hasil import")
		default:
			// kegagalan transport/parse feed → error sisi klien
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	books := make([]dto.BookResponse, 0, len(imported))
	for i := range imported {
		books = append(books, dto.ToBookResponse(&imported[i]))
	}
	return helper.JsonCreated(c, "Import selesai", fiber.Map{
		"books":          books,
		"books_imported": len(books),
	})
}
