// internals/features/library/members/controller/members_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpusku_backend/internals/features/library/members/dto"
	model "perpusku_backend/internals/features/library/members/model"
	helper "perpusku_backend/internals/helpers"
)

type MembersController struct {
	DB *gorm.DB
}

func NewMembersController(db *gorm.DB) *MembersController {
	return &MembersController{DB: db}
}

var validate = validator.New()

// findMember: resolve lewat selector (ById/ByName).
func (h *MembersController) findMember(c *fiber.Ctx, sel dto.MemberSelector) (*model.MemberModel, error) {
	var m model.MemberModel
	if err := sel.Apply(h.DB.WithContext(c.UserContext())).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// findMemberByID: jalur primary key; id malformed == tidak ditemukan.
func (h *MembersController) findMemberByID(c *fiber.Ctx, raw string) (*model.MemberModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return h.findMember(c, dto.SelectorByID(id))
}

// =========================================================
// CREATE - POST /members
// Email unik keras → duplikat jadi 409 dari constraint DB.
// =========================================================
func (h *MembersController) Create(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicate(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan anggota")
	}
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", dto.ToMemberResponse(m))
}

// =========================================================
// DETAIL - GET /members/:id/detail
// =========================================================
func (h *MembersController) GetByID(c *fiber.Ctx) error {
	m, err := h.findMemberByID(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Anggota tidak ditemukan", "Gagal mengambil anggota")
	}
	return helper.JsonOK(c, "ok", dto.ToMemberResponse(m))
}

// =========================================================
// LOOKUP - GET /members/detail?id=...  ATAU  ?name=...
// Tepat satu selector; dua-duanya / kosong → 400.
// =========================================================
func (h *MembersController) GetBySelector(c *fiber.Ctx) error {
	sel, err := dto.ParseMemberSelector(c.Query("id"), c.Query("name"))
	if err != nil {
		if errors.Is(err, dto.ErrNoSelector) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Selector tidak valid")
	}

	m, err := h.findMember(c, sel)
	if err != nil {
		return helper.JsonDBError(c, err, "Anggota tidak ditemukan", "Gagal mengambil anggota")
	}
	return helper.JsonOK(c, "ok", dto.ToMemberResponse(m))
}

// =========================================================
// LIST - GET /members?limit&offset
// =========================================================
func (h *MembersController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolveLimitOffset(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.MemberModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}

	var items []model.MemberModel
	if err := h.DB.WithContext(c.UserContext()).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar anggota")
	}

	resp := dto.ToMemberResponses(items)
	return helper.JsonList(c, "ok", resp,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(resp)))
}

// =========================================================
// UPDATE - PUT /members/:id
// Selalu re-resolve by PK dulu, baru apply field yang dikirim.
// =========================================================
func (h *MembersController) Update(c *fiber.Ctx) error {
	m, err := h.findMemberByID(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Anggota tidak ditemukan", "Gagal mengambil anggota")
	}

	var req dto.MemberPatchRequest
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
			Model(&model.MemberModel{}).
			Where("id = ?", m.ID).
			Updates(changes).Error; err != nil {
			if helper.IsDuplicate(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
			}
			return helper.JsonError(c, fiber.StatusConflict, "Gagal memperbarui anggota")
		}
	}

	updated, err := h.findMemberByID(c, m.ID.String())
	if err != nil {
		return helper.JsonDBError(c, err, "Anggota tidak ditemukan", "Gagal mengambil anggota")
	}
	return helper.JsonUpdated(c, "Anggota berhasil diperbarui", dto.ToMemberResponse(updated))
}

// =========================================================
// DELETE - DELETE /members/:id
// =========================================================
func (h *MembersController) Delete(c *fiber.Ctx) error {
	m, err := h.findMemberByID(c, c.Params("id"))
	if err != nil {
		return helper.JsonDBError(c, err, "Anggota tidak ditemukan", "Gagal mengambil anggota")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&model.MemberModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menghapus anggota")
	}
	return helper.JsonDeleted(c)
}
