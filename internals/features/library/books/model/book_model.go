// internals/features/library/books/model/book_model.go
package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BookModel struct {
	// PK
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`

	Title   string         `json:"title"   gorm:"column:title;type:text"`
	Authors pq.StringArray `json:"authors" gorm:"column:authors;type:text[]"`

	// ISBN soft-unique: dicek di path add, TANPA unique constraint di DB
	// (insert paralel dengan ISBN sama bisa lolos dua-duanya — lihat DESIGN.md)
	ISBN      string  `json:"isbn"                gorm:"column:isbn;type:text;index:idx_book_isbn"`
	Publisher *string `json:"publisher,omitempty" gorm:"column:publisher;type:text"`
	Stock     int     `json:"stock"               gorm:"column:stock;not null;default:0"`
}

func (BookModel) TableName() string { return "book" }
