// internals/features/library/members/dto/member_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "perpusku_backend/internals/features/library/members/model"
)

/* =========================
   REQUEST
   ========================= */

type MemberCreateRequest struct {
	Name    string  `json:"name"              validate:"required,min=1"`
	Email   string  `json:"email"             validate:"required,email"`
	Address *string `json:"address,omitempty" validate:"omitempty"`
	Debt    int     `json:"debt"              validate:"omitempty,gte=0"`
}

type MemberPatchRequest struct {
	Name    *string `json:"name,omitempty"    validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty"   validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty"`
	Debt    *int    `json:"debt,omitempty"    validate:"omitempty,gte=0"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// trimClearable trim tapi MEMPERTAHANKAN string kosong eksplisit:
// patch "" artinya kosongkan kolom, beda dengan field yang tidak dikirim.
func trimClearable(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func (r *MemberCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = trimPtr(r.Address)
}

func (r *MemberPatchRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Email = trimPtr(r.Email)
	r.Address = trimClearable(r.Address)
}

/* =========================
   MAPPER
   ========================= */

func (r *MemberCreateRequest) ToModel() *model.MemberModel {
	return &model.MemberModel{
		Name:    r.Name,
		Email:   r.Email,
		Address: r.Address,
		Debt:    r.Debt,
	}
}

func (r *MemberPatchRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Address != nil {
		if *r.Address == "" {
			changes["address"] = nil // "" eksplisit → NULL-kan kolom
		} else {
			changes["address"] = *r.Address
		}
	}
	if r.Debt != nil {
		changes["debt"] = *r.Debt
	}
	return changes
}

/* =========================
   RESPONSE
   ========================= */

type MemberResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address *string   `json:"address,omitempty"`
	Debt    int       `json:"debt"`
}

func ToMemberResponse(m *model.MemberModel) MemberResponse {
	return MemberResponse{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Address: m.Address,
		Debt:    m.Debt,
	}
}

func ToMemberResponses(ms []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMemberResponse(&ms[i]))
	}
	return out
}

/* =========================
   SELECTOR (ById / ByName)
   ========================= */

// ErrNoSelector: caller tidak memberi id maupun name, atau memberi keduanya.
var ErrNoSelector = errors.New("berikan salah satu: member id ATAU member name")

type selectorKind int

const (
	selectorNone selectorKind = iota
	selectorByID
	selectorByName
)

// MemberSelector adalah tagged variant untuk lookup anggota:
// ById(uuid) atau ByName(string) — tepat satu, bukan inspeksi tipe dinamis.
type MemberSelector struct {
	kind selectorKind
	id   uuid.UUID
	name string
}

func SelectorByID(id uuid.UUID) MemberSelector {
	return MemberSelector{kind: selectorByID, id: id}
}

func SelectorByName(name string) MemberSelector {
	return MemberSelector{kind: selectorByName, name: name}
}

// ParseMemberSelector memvalidasi aturan tepat-satu dari query param mentah.
// ID yang bukan UUID tetap menghasilkan selector ById — biar lookup-nya
// yang gagal 404 (kontrak lama: id malformed == tidak ditemukan).
func ParseMemberSelector(rawID, rawName string) (MemberSelector, error) {
	rawID = strings.TrimSpace(rawID)
	rawName = strings.TrimSpace(rawName)

	switch {
	case rawID != "" && rawName != "":
		return MemberSelector{}, ErrNoSelector
	case rawID != "":
		id, err := uuid.Parse(rawID)
		if err != nil {
			// id malformed → selector valid tapi pasti tidak match
			return MemberSelector{kind: selectorByID, id: uuid.Nil}, nil
		}
		return SelectorByID(id), nil
	case rawName != "":
		return SelectorByName(rawName), nil
	default:
		return MemberSelector{}, ErrNoSelector
	}
}

// Apply menambahkan klausa WHERE sesuai variant.
func (s MemberSelector) Apply(tx *gorm.DB) *gorm.DB {
	switch s.kind {
	case selectorByID:
		return tx.Where("id = ?", s.id)
	case selectorByName:
		return tx.Where("name = ?", s.name)
	default:
		// tidak seharusnya kejadian: ParseMemberSelector menolak selector kosong
		return tx.Where("1 = 0")
	}
}
