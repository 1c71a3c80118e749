package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "perpusku_backend/internals/features/library/books/model"
	service "perpusku_backend/internals/features/library/books/service"
)

/* =========================
   Fakes
   ========================= */

type fakeFeed struct {
	pages   [][]service.FeedBook
	failAt  int  // fetch halaman ke-n gagal (0 = tidak pernah)
	fetched int
}

func (f *fakeFeed) FetchPage(_ context.Context, _ service.ImportFilters, page int) ([]service.FeedBook, error) {
	f.fetched++
	if f.failAt > 0 && page == f.failAt {
		return nil, errors.New("connection reset")
	}
	if page > len(f.pages) {
		return nil, nil
	}
	return f.pages[page-1], nil
}

type fakeAdder struct {
	existing map[string]bool // ISBN yang dianggap duplikat
	added    []string
}

func (a *fakeAdder) AddBook(_ context.Context, m *model.BookModel) (bool, error) {
	if a.existing[m.ISBN] {
		return false, nil
	}
	a.added = append(a.added, m.ISBN)
	return true, nil
}

func feedPage(n int, startISBN int) []service.FeedBook {
	out := make([]service.FeedBook, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, service.FeedBook{
			Title:   fmt.Sprintf("Book %d", startISBN+i),
			Authors: "Jane Doe/John Roe",
			ISBN:    fmt.Sprintf("isbn-%d", startISBN+i),
		})
	}
	return out
}

/* =========================
   ImportBooks
   ========================= */

func Test_ImportBooks_StopsAtTarget(t *testing.T) {
	feed := &fakeFeed{pages: [][]service.FeedBook{feedPage(4, 1), feedPage(4, 5)}}
	store := &fakeAdder{existing: map[string]bool{}}

	imported, err := service.ImportBooks(context.Background(), feed, store, service.ImportFilters{}, 5)

	require.NoError(t, err)
	assert.Len(t, imported, 5)
	assert.Equal(t, []string{"isbn-1", "isbn-2", "isbn-3", "isbn-4", "isbn-5"}, store.added)
	// stok default buku hasil import
	for _, b := range imported {
		assert.Equal(t, 5, b.Stock)
	}
}

func Test_ImportBooks_DuplicatesDoNotCount(t *testing.T) {
	feed := &fakeFeed{pages: [][]service.FeedBook{feedPage(4, 1), feedPage(4, 5)}}
	store := &fakeAdder{existing: map[string]bool{"isbn-1": true, "isbn-3": true}}

	imported, err := service.ImportBooks(context.Background(), feed, store, service.ImportFilters{}, 4)

	require.NoError(t, err)
	assert.Len(t, imported, 4)
	assert.Equal(t, []string{"isbn-2", "isbn-4", "isbn-5", "isbn-6"}, store.added)
}

func Test_ImportBooks_FeedExhaustedBeforeTarget(t *testing.T) {
	feed := &fakeFeed{pages: [][]service.FeedBook{feedPage(3, 1)}}
	store := &fakeAdder{existing: map[string]bool{}}

	imported, err := service.ImportBooks(context.Background(), feed, store, service.ImportFilters{}, 5)

	assert.ErrorIs(t, err, service.ErrFeedExhausted)
	// import non-atomik: yang sudah masuk tetap ada
	assert.Len(t, imported, 3)
}

func Test_ImportBooks_TransportFailureKeepsPartialImport(t *testing.T) {
	feed := &fakeFeed{
		pages:  [][]service.FeedBook{feedPage(3, 1), feedPage(3, 4)},
		failAt: 2,
	}
	store := &fakeAdder{existing: map[string]bool{}}

	imported, err := service.ImportBooks(context.Background(), feed, store, service.ImportFilters{}, 5)

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrFeedExhausted)
	assert.Len(t, imported, 3)
	assert.Equal(t, []string{"isbn-1", "isbn-2", "isbn-3"}, store.added)
}

func Test_FeedBook_ToModel_SplitsAuthors(t *testing.T) {
	fb := service.FeedBook{
		Title:     " Sapiens ",
		Authors:   "Yuval Noah Harari / Someone Else",
		ISBN:      " 9780099590088 ",
		Publisher: "Vintage",
	}

	m := fb.ToModel()

	assert.Equal(t, "Sapiens", m.Title)
	assert.Equal(t, []string{"Yuval Noah Harari", "Someone Else"}, []string(m.Authors))
	assert.Equal(t, "9780099590088", m.ISBN)
	require.NotNil(t, m.Publisher)
	assert.Equal(t, "Vintage", *m.Publisher)
	assert.Equal(t, 5, m.Stock)
}

/* =========================
   CatalogFeed (HTTP client)
   ========================= */

func Test_CatalogFeed_FetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "war", r.URL.Query().Get("title"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":[{"title":"War and Peace","authors":"Leo Tolstoy","isbn":"x","publisher":"p"}]}`))
	}))
	defer srv.Close()

	feed := service.NewCatalogFeed(srv.URL)
	records, err := feed.FetchPage(context.Background(), service.ImportFilters{Title: "war"}, 2)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "War and Peace", records[0].Title)
}

func Test_CatalogFeed_FetchPage_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	feed := service.NewCatalogFeed(srv.URL)
	_, err := feed.FetchPage(context.Background(), service.ImportFilters{}, 1)

	assert.Error(t, err)
}

func Test_CatalogFeed_FetchPage_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message": "bukan array"`))
	}))
	defer srv.Close()

	feed := service.NewCatalogFeed(srv.URL)
	_, err := feed.FetchPage(context.Background(), service.ImportFilters{}, 1)

	assert.Error(t, err)
}
