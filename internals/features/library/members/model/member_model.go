// internals/features/library/members/model/member_model.go
package model

import (
	"github.com/google/uuid"
)

type MemberModel struct {
	// PK
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`

	Name string `json:"name" gorm:"column:name;type:text"`

	// Email unik keras di DB (beda dengan ISBN buku yang cuma soft-unique)
	Email   string  `json:"email"             gorm:"column:email;type:text;uniqueIndex:uq_members_email"`
	Address *string `json:"address,omitempty" gorm:"column:address;type:text"`

	// Saldo tagihan anggota (denda belum dibayar), default 0.
	Debt int `json:"debt" gorm:"column:debt;not null;default:0"`
}

func (MemberModel) TableName() string { return "members" }
