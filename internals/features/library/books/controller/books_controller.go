// internals/features/library/books/controller/books_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpusku_backend/internals/features/library/books/dto"
	model "perpusku_backend/internals/features/library/books/model"
	service "perpusku_backend/internals/features/library/books/service"
	helper "perpusku_backend/internals/helpers"
)

type BooksController struct {
	DB      *gorm.DB
	Catalog *service.CatalogService
	Feed    service.PageFetcher
}

func NewBooksController(db *gorm.DB, feed service.PageFetcher) *BooksController {
	return &BooksController{
		DB:      db,
		Catalog: service.NewCatalogService(db),
		Feed:    feed,
	}
}

var validate = validator.New()

// findBook: lookup by PK. ID yang bukan UUID diperlakukan sama dengan
// baris yang tidak ada → dua-duanya 404 (kontrak lama).
func (h *BooksController) findBook(c *fiber.Ctx, raw string) (*model.BookModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.BookModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// =========================================================
// CREATE - POST /books
// Duplikat ISBN = no-op: 200 dengan data null, BUKAN error.
// =========================================================
func (h *BooksController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	added, err := h.Catalog.AddBook(c.UserContext(), m)
	if err != nil {
		if errors.Is(err, service.ErrAmbiguousISBN) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonWriteError(c, err, "Buku tidak ditemukan", "Gagal menyimpan buku")
	}
	if !added {
		return helper.JsonOK(c, "Buku dengan ISBN tersebut sudah ada, tidak ditambahkan", nil)
	}
	return helper.JsonCreated(c, "Buku berhasil ditambahkan", dto.ToBookResponse(m))
}

// =========================================================
// DETAIL - GET /books/:id/detail
// =========================================================
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	m, err := h.findBook(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Buku tidak ditemukan", "Gagal mengambil buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponse(m))
}

// =========================================================
// LIST - GET /books?limit&offset
// Pagination membawa total baris yang match, bukan ukuran halaman.
// =========================================================
func (h *BooksController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolveLimitOffset(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.BookModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung buku")
	}

	var items []model.BookModel
	if err := h.DB.WithContext(c.UserContext()).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar buku")
	}

	resp := dto.ToBookResponses(items)
	return helper.JsonList(c, "ok", resp,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(resp)))
}

// =========================================================
// SEARCH - GET /books/search?field&query&limit&offset
// field: title|author|isbn, match substring case-insensitive.
// =========================================================
func (h *BooksController) Search(c *fiber.Ctx) error {
	field, err := dto.ParseSearchField(c.Query("field"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter query wajib diisi")
	}
	paging, err := helper.ResolveLimitOffset(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&model.BookModel{})
	pattern := "%" + query + "%"
	switch field {
	case dto.SearchFieldTitle:
		tx = tx.Where("title ILIKE ?", pattern)
	case dto.SearchFieldAuthor:
		tx = tx.Where("array_to_string(authors, ' ') ILIKE ?", pattern)
	case dto.SearchFieldISBN:
		tx = tx.Where("isbn ILIKE ?", pattern)
	}

	var items []model.BookModel
	if err := tx.Limit(paging.Limit).Offset(paging.Offset).Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari buku")
	}

	resp := dto.ToBookResponses(items)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "ok",
		"data": fiber.Map{
			"result":      resp,
			"query":       query,
			"field":       string(field),
			"no_of_books": len(resp),
		},
	})
}

// =========================================================
// UPDATE - PUT /books/:id
// Re-read dulu (404 sebelum nulis apa pun), apply field yang
// dikirim saja, lalu re-read dan kembalikan hasil akhirnya.
// =========================================================
func (h *BooksController) Update(c *fiber.Ctx) error {
	m, err := h.findBook(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Buku tidak ditemukan", "Gagal mengambil buku")
	}

	var req dto.BookPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	changes := req.Changes()
	if len(changes) > 0 {
		if err := h.DB.WithContext(c.UserContext()).
			Model(&model.BookModel{}).
			Where("id = ?", m.ID).
			Updates(changes).Error; err != nil {
			return helper.JsonError(c, fiber.StatusConflict, "Gagal memperbarui buku")
		}
	}

	updated, err := h.findBook(c, m.ID.String())
	if err != nil {
		return helper.JsonDBError(c, err, "Buku tidak ditemukan", "Gagal mengambil buku")
	}
	return helper.JsonUpdated(c, "Buku berhasil diperbarui", dto.ToBookResponse(updated))
}

// =========================================================
// DELETE - DELETE /books/:id
// =========================================================
func (h *BooksController) Delete(c *fiber.Ctx) error {
	m, err := h.findBook(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Buku tidak ditemukan", "Gagal mengambil buku")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&model.BookModel{}, "id = ?", m.ID).Error; err != nil {
		// FK violation (masih ada transaksi yang pegang buku ini) → 409
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menghapus buku")
	}
	return helper.JsonDeleted(c)
}
