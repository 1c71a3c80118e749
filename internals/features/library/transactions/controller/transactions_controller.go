// internals/features/library/transactions/controller/transactions_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	bookModel "perpusku_backend/internals/features/library/books/model"
	memberModel "perpusku_backend/internals/features/library/members/model"
	dto "perpusku_backend/internals/features/library/transactions/dto"
	model "perpusku_backend/internals/features/library/transactions/model"
	service "perpusku_backend/internals/features/library/transactions/service"
	helper "perpusku_backend/internals/helpers"
)

type TransactionsController struct {
	DB *gorm.DB

	// Now dioverride di test supaya clock-nya deterministik.
	Now func() time.Time
}

func NewTransactionsController(db *gorm.DB) *TransactionsController {
	return &TransactionsController{DB: db, Now: func() time.Time { return time.Now().UTC() }}
}

var validate = validator.New()

func (h *TransactionsController) findTransaction(c *fiber.Ctx, raw string) (*model.TransactionModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.TransactionModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// =========================================================
// CREATE - POST /transactions
// Buku dan anggota wajib ada dulu; insert selalu status=issued,
// issue_date=now (jam server), return_date null, late_fee 0.
// =========================================================
func (h *TransactionsController) Create(c *fiber.Ctx) error {
	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// validasi referensi lewat kolaborator (bukan cuma FK constraint),
	// supaya pesan errornya menyebut sisi mana yang hilang
	var bookCount int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&bookModel.BookModel{}).
		Where("id = ?", req.BookID).
		Count(&bookCount).Error; err != nil || bookCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	var memberCount int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&memberModel.MemberModel{}).
		Where("id = ?", req.MemberID).
		Count(&memberCount).Error; err != nil || memberCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	m := &model.TransactionModel{
		BookID:    req.BookID,
		MemberID:  req.MemberID,
		Status:    model.StatusIssued,
		IssueDate: h.Now(),
		LateFee:   0,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonWriteError(c, err, "Transaksi tidak ditemukan", "Gagal menyimpan transaksi")
	}
	return helper.JsonCreated(c, "Transaksi berhasil dibuat", dto.ToTransactionResponse(m))
}

// =========================================================
// DETAIL - GET /transactions/:id/detail
// =========================================================
func (h *TransactionsController) GetByID(c *fiber.Ctx) error {
	m, err := h.findTransaction(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Transaksi tidak ditemukan", "Gagal mengambil transaksi")
	}
	return helper.JsonOK(c, "ok", dto.ToTransactionResponse(m))
}

// =========================================================
// LIST - GET /transactions?limit&offset
// =========================================================
func (h *TransactionsController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolveLimitOffset(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.TransactionModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung transaksi")
	}

	var items []model.TransactionModel
	if err := h.DB.WithContext(c.UserContext()).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar transaksi")
	}

	resp := dto.ToTransactionResponses(items)
	return helper.JsonList(c, "ok", resp,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(resp)))
}

// =========================================================
// UPDATE - PUT /transactions/:id
// Denda terpicu kalau patch set status=returned ATAU bawa
// return_date. return_date + late_fee ditulis dalam satu update;
// late_fee kiriman caller dioverride. Status TIDAK ikut berubah
// kecuali dikirim eksplisit.
// =========================================================
func (h *TransactionsController) Update(c *fiber.Ctx) error {
	m, err := h.findTransaction(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Transaksi tidak ditemukan", "Gagal mengambil transaksi")
	}

	var req dto.TransactionPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	changes, err := service.ReturnChanges(&req, m.IssueDate, h.Now(), configs.LateFeePerDay)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if len(changes) > 0 {
		if err := h.DB.WithContext(c.UserContext()).
			Model(&model.TransactionModel{}).
			Where("id = ?", m.ID).
			Updates(changes).Error; err != nil {
			return helper.JsonError(c, fiber.StatusConflict, "Gagal memperbarui transaksi")
		}
	}

	updated, err := h.findTransaction(c, m.ID.String())
	if err != nil {
		return helper.JsonDBError(c, err, "Transaksi tidak ditemukan", "Gagal mengambil transaksi")
	}
	return helper.JsonUpdated(c, "Transaksi berhasil diperbarui", dto.ToTransactionResponse(updated))
}

// =========================================================
// DELETE - DELETE /transactions/:id
// =========================================================
func (h *TransactionsController) Delete(c *fiber.Ctx) error {
	m, err := h.findTransaction(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Transaksi tidak ditemukan", "Gagal mengambil transaksi")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&model.TransactionModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menghapus transaksi")
	}
	return helper.JsonDeleted(c)
}
