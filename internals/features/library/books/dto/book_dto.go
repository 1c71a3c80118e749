// internals/features/library/books/dto/book_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "perpusku_backend/internals/features/library/books/model"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	Title     string   `json:"title"               validate:"required,min=1"`
	Authors   []string `json:"authors"             validate:"required,min=1,dive,min=1"`
	ISBN      string   `json:"isbn"                validate:"required,min=1"`
	Publisher *string  `json:"publisher,omitempty" validate:"omitempty,min=1"`
	Stock     int      `json:"stock"               validate:"omitempty,gte=0"`
}

type BookPatchRequest struct {
	Title     *string  `json:"title,omitempty"     validate:"omitempty,min=1"`
	Authors   []string `json:"authors,omitempty"   validate:"omitempty,min=1,dive,min=1"`
	ISBN      *string  `json:"isbn,omitempty"      validate:"omitempty,min=1"`
	Publisher *string  `json:"publisher,omitempty" validate:"omitempty"`
	Stock     *int     `json:"stock,omitempty"     validate:"omitempty,gte=0"`
}

/* =========================
   NORMALIZER
   ========================= */

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

func trimAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Authors = trimAll(r.Authors)
	r.Publisher = trimPtr(r.Publisher)
}

func (r *BookPatchRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.ISBN = trimPtr(r.ISBN)
	if r.Authors != nil {
		r.Authors = trimAll(r.Authors)
	}
	r.Publisher = trimClearable(r.Publisher)
}

/* =========================
   MAPPER
   ========================= */

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		Title:     r.Title,
		Authors:   pq.StringArray(r.Authors),
		ISBN:      r.ISBN,
		Publisher: r.Publisher,
		Stock:     r.Stock,
	}
}

// Changes mengembalikan hanya field yang dikirim caller (partial update).
func (r *BookPatchRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Authors != nil {
		changes["authors"] = pq.StringArray(r.Authors)
	}
	if r.ISBN != nil {
		changes["isbn"] = *r.ISBN
	}
	if r.Publisher != nil {
		if *r.Publisher == "" {
			changes["publisher"] = nil // "" eksplisit → NULL-kan kolom
		} else {
			changes["publisher"] = *r.Publisher
		}
	}
	if r.Stock != nil {
		changes["stock"] = *r.Stock
	}
	return changes
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Authors   []string  `json:"authors"`
	ISBN      string    `json:"isbn"`
	Publisher *string   `json:"publisher,omitempty"`
	Stock     int       `json:"stock"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	return BookResponse{
		ID:        m.ID,
		Title:     m.Title,
		Authors:   []string(m.Authors),
		ISBN:      m.ISBN,
		Publisher: m.Publisher,
		Stock:     m.Stock,
	}
}

func ToBookResponses(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}

/* =========================
   SEARCH FIELD (enum)
   ========================= */

type SearchField string

const (
	SearchFieldTitle  SearchField = "title"
	SearchFieldAuthor SearchField = "author"
	SearchFieldISBN   SearchField = "isbn"
)

// ParseSearchField menolak field di luar title|author|isbn.
func ParseSearchField(s string) (SearchField, error) {
	switch SearchField(strings.ToLower(strings.TrimSpace(s))) {
	case SearchFieldTitle:
		return SearchFieldTitle, nil
	case SearchFieldAuthor:
		return SearchFieldAuthor, nil
	case SearchFieldISBN:
		return SearchFieldISBN, nil
	default:
		return "", fmt.Errorf("field pencarian tidak dikenal: %q", s)
	}
}
