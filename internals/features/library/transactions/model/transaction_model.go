// internals/features/library/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	bookModel "perpusku_backend/internals/features/library/books/model"
	memberModel "perpusku_backend/internals/features/library/members/model"
)

/* =========================
   STATUS (state machine)
   issued → returned (terminal)
   ========================= */

type TransactionStatus string

const (
	StatusIssued   TransactionStatus = "issued"
	StatusReturned TransactionStatus = "returned"
)

func (s TransactionStatus) IsValid() bool {
	return s == StatusIssued || s == StatusReturned
}

type TransactionModel struct {
	// PK
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs — wajib ada saat create (divalidasi controller + constraint DB)
	BookID   uuid.UUID `json:"book_id"   gorm:"column:book_id;type:uuid;not null;index:idx_transactions_book"`
	MemberID uuid.UUID `json:"member_id" gorm:"column:member_id;type:uuid;not null;index:idx_transactions_member"`

	Status TransactionStatus `json:"status" gorm:"column:status;type:text;not null;default:issued"`

	IssueDate  time.Time  `json:"issue_date"            gorm:"column:issue_date;type:timestamptz;not null;default:now()"`
	ReturnDate *time.Time `json:"return_date,omitempty" gorm:"column:return_date;type:timestamptz"`

	// Dihitung hanya saat pengembalian; 0 selama masih issued.
	LateFee float64 `json:"late_fee" gorm:"column:late_fee;not null;default:0"`

	// Relasi supaya AutoMigrate bikin FK constraint-nya
	Book   bookModel.BookModel     `json:"-" gorm:"foreignKey:BookID;references:ID;constraint:OnDelete:RESTRICT"`
	Member memberModel.MemberModel `json:"-" gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (TransactionModel) TableName() string { return "transactions" }
