// internals/features/library/transactions/dto/transaction_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "perpusku_backend/internals/features/library/transactions/model"
)

/* =========================
   REQUEST
   ========================= */

type TransactionCreateRequest struct {
	BookID   uuid.UUID `json:"book_id"   validate:"required"`
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

type TransactionPatchRequest struct {
	Status     *model.TransactionStatus `json:"status,omitempty"      validate:"omitempty,oneof=issued returned"`
	ReturnDate *time.Time               `json:"return_date,omitempty"`
	LateFee    *float64                 `json:"late_fee,omitempty"    validate:"omitempty,gte=0"`
}

// TriggersReturn: flip status ke returned ATAU sekadar kirim return_date —
// dua-duanya memicu perhitungan denda yang sama.
func (r *TransactionPatchRequest) TriggersReturn() bool {
	return (r.Status != nil && *r.Status == model.StatusReturned) || r.ReturnDate != nil
}

// Changes mengembalikan hanya field yang dikirim caller.
// Catatan: saat return terpicu, controller meng-override return_date +
// late_fee di map ini; late_fee kiriman caller kalah.
func (r *TransactionPatchRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.ReturnDate != nil {
		changes["return_date"] = *r.ReturnDate
	}
	if r.LateFee != nil {
		changes["late_fee"] = *r.LateFee
	}
	return changes
}

/* =========================
   RESPONSE
   ========================= */

type TransactionResponse struct {
	ID         uuid.UUID               `json:"id"`
	BookID     uuid.UUID               `json:"book_id"`
	MemberID   uuid.UUID               `json:"member_id"`
	Status     model.TransactionStatus `json:"status"`
	IssueDate  time.Time               `json:"issue_date"`
	ReturnDate *time.Time              `json:"return_date,omitempty"`
	LateFee    float64                 `json:"late_fee"`
}

func ToTransactionResponse(m *model.TransactionModel) TransactionResponse {
	return TransactionResponse{
		ID:         m.ID,
		BookID:     m.BookID,
		MemberID:   m.MemberID,
		Status:     m.Status,
		IssueDate:  m.IssueDate,
		ReturnDate: m.ReturnDate,
		LateFee:    m.LateFee,
	}
}

func ToTransactionResponses(ms []model.TransactionModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToTransactionResponse(&ms[i]))
	}
	return out
}
