package dto_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "perpusku_backend/internals/features/library/books/dto"
)

func Test_ParseSearchField(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    dto.SearchField
		wantErr bool
	}{
		{name: "title", raw: "title", want: dto.SearchFieldTitle},
		{name: "author", raw: "author", want: dto.SearchFieldAuthor},
		{name: "isbn", raw: "isbn", want: dto.SearchFieldISBN},
		{name: "case_insensitive", raw: " TITLE ", want: dto.SearchFieldTitle},
		{name: "bogus_rejected", raw: "bogus", wantErr: true},
		{name: "empty_rejected", raw: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dto.ParseSearchField(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_BookCreateRequest_Validation(t *testing.T) {
	v := validator.New()

	valid := dto.BookCreateRequest{
		Title:   "War and Peace",
		Authors: []string{"Leo Tolstoy"},
		ISBN:    "9780140447934",
	}
	assert.NoError(t, v.Struct(&valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, v.Struct(&missingTitle))

	noAuthors := valid
	noAuthors.Authors = nil
	assert.Error(t, v.Struct(&noAuthors))

	negativeStock := valid
	negativeStock.Stock = -1
	assert.Error(t, v.Struct(&negativeStock))
}

func Test_BookCreateRequest_Normalize_ToModel(t *testing.T) {
	pub := "  Penguin  "
	req := dto.BookCreateRequest{
		Title:     "  War and Peace ",
		Authors:   []string{" Leo Tolstoy ", "  "},
		ISBN:      " 9780140447934 ",
		Publisher: &pub,
		Stock:     3,
	}
	req.Normalize()
	m := req.ToModel()

	assert.Equal(t, "War and Peace", m.Title)
	assert.Equal(t, []string{"Leo Tolstoy"}, []string(m.Authors))
	assert.Equal(t, "9780140447934", m.ISBN)
	require.NotNil(t, m.Publisher)
	assert.Equal(t, "Penguin", *m.Publisher)
	assert.Equal(t, 3, m.Stock)
}

func Test_BookPatchRequest_Changes_OnlySuppliedFields(t *testing.T) {
	title := "Anna Karenina"
	stock := 7

	req := dto.BookPatchRequest{Title: &title, Stock: &stock}
	req.Normalize()
	changes := req.Changes()

	assert.Len(t, changes, 2)
	assert.Equal(t, "Anna Karenina", changes["title"])
	assert.Equal(t, 7, changes["stock"])

	empty := dto.BookPatchRequest{}
	empty.Normalize()
	assert.Empty(t, empty.Changes())
}

func Test_BookPatchRequest_EmptyPublisherClearsColumn(t *testing.T) {
	empty := "   "
	req := dto.BookPatchRequest{Publisher: &empty}
	req.Normalize()
	changes := req.Changes()

	// "" eksplisit ≠ tidak dikirim: kolomnya di-NULL-kan
	require.Contains(t, changes, "publisher")
	assert.Nil(t, changes["publisher"])

	req = dto.BookPatchRequest{}
	req.Normalize()
	assert.NotContains(t, req.Changes(), "publisher")
}
