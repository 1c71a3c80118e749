// internals/features/library/books/service/catalog.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "perpusku_backend/internals/features/library/books/model"
)

// ErrAmbiguousISBN: pre-check ISBN menemukan lebih dari satu baris.
// Karena ISBN tidak di-constraint unik di DB, kondisi ini mungkin terjadi
// dan tidak boleh diselesaikan diam-diam dengan memilih salah satu.
var ErrAmbiguousISBN = errors.New("lebih dari satu buku dengan ISBN yang sama di katalog")

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// AddBook menyisipkan buku baru setelah cek ISBN (check-then-insert,
// TANPA proteksi constraint — race antar add paralel diterima, lihat DESIGN.md).
// Return (false, nil) kalau ISBN sudah ada: no-op, bukan error;
// caller WAJIB memeriksa flag added, bukan mengandalkan error.
func (s *CatalogService) AddBook(ctx context.Context, m *model.BookModel) (added bool, err error) {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("isbn = ?", m.ISBN).
		Count(&count).Error; err != nil {
		return false, err
	}
	switch {
	case count == 1:
		return false, nil
	case count > 1:
		return false, ErrAmbiguousISBN
	}

	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return false, err
	}
	return true, nil
}
