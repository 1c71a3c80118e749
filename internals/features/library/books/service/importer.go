// internals/features/library/books/service/importer.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"

	"perpusku_backend/internals/constants"
	model "perpusku_backend/internals/features/library/books/model"
)

/* =========================
   CATALOG FEED CLIENT
   ========================= */

// ErrFeedExhausted: feed habis sebelum target import tercapai.
var ErrFeedExhausted = errors.New("katalog eksternal kehabisan hasil")

type ImportFilters struct {
	Title     string
	Authors   string
	ISBN      string
	Publisher string
}

// FeedBook adalah satu record dari feed katalog (format frappe-library:
// {"message":[{...}]}, authors dipisah "/" bila lebih dari satu).
type FeedBook struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	ISBN      string `json:"isbn"`
	Publisher string `json:"publisher"`
}

type feedEnvelope struct {
	Message []FeedBook `json:"message"`
}

// PageFetcher diabstraksi supaya importer bisa dites tanpa jaringan.
type PageFetcher interface {
	FetchPage(ctx context.Context, filters ImportFilters, page int) ([]FeedBook, error)
}

type CatalogFeed struct {
	BaseURL string
	Client  *http.Client
}

func NewCatalogFeed(baseURL string) *CatalogFeed {
	return &CatalogFeed{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *CatalogFeed) FetchPage(ctx context.Context, filters ImportFilters, page int) ([]FeedBook, error) {
	q := url.Values{}
	if filters.Title != "" {
		q.Set("title", filters.Title)
	}
	if filters.Authors != "" {
		q.Set("authors", filters.Authors)
	}
	if filters.ISBN != "" {
		q.Set("isbn", filters.ISBN)
	}
	if filters.Publisher != "" {
		q.Set("publisher", filters.Publisher)
	}
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("membentuk request feed: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menghubungi katalog eksternal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("katalog eksternal membalas status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("membaca body feed: %w", err)
	}

	var env feedEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing body feed: %w", err)
	}
	return env.Message, nil
}

/* =========================
   IMPORTER
   ========================= */

// BookAdder mengembalikan added=false untuk duplikat ISBN (no-op path add).
type BookAdder interface {
	AddBook(ctx context.Context, m *model.BookModel) (added bool, err error)
}

// ToModel mengubah record feed jadi kandidat buku dengan stok default 5.
func (fb FeedBook) ToModel() *model.BookModel {
	authors := strings.Split(fb.Authors, "/")
	for i := range authors {
		authors[i] = strings.TrimSpace(authors[i])
	}
	var publisher *string
	if p := strings.TrimSpace(fb.Publisher); p != "" {
		publisher = &p
	}
	return &model.BookModel{
		Title:     strings.TrimSpace(fb.Title),
		Authors:   pq.StringArray(authors),
		ISBN:      strings.TrimSpace(fb.ISBN),
		Publisher: publisher,
		Stock:     constants.ImportedBookStock,
	}
}

// ImportBooks menarik feed halaman demi halaman dan menambahkan tiap record
// lewat path add (duplikat ISBN = no-op, tidak dihitung). Berhenti begitu
// `target` buku benar-benar tersisip; feed habis duluan → ErrFeedExhausted.
// Import TIDAK atomik: buku yang sudah tersisip tetap ada meski
// fetch halaman berikutnya gagal (at-least-once).
func ImportBooks(ctx context.Context, feed PageFetcher, store BookAdder, filters ImportFilters, target int) ([]model.BookModel, error) {
	if target <= 0 {
		target = constants.DefaultImportCount
	}

	imported := make([]model.BookModel, 0, target)
	for page := 1; ; page++ {
		records, err := feed.FetchPage(ctx, filters, page)
		if err != nil {
			return imported, err
		}
		if len(records) == 0 {
			return imported, ErrFeedExhausted
		}

		for _, rec := range records {
			m := rec.ToModel()
			added, err := store.AddBook(ctx, m)
			if err != nil {
				return imported, err
			}
			if !added {
				continue // duplikat ISBN tidak dihitung ke target
			}
			imported = append(imported, *m)
			if len(imported) >= target {
				return imported, nil
			}
		}
	}
}
