package library

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
	"gorm.io/gorm"

	model "perpusku_backend/internals/features/library/books/model"
)

type BookSeed struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	ISBN      string   `json:"isbn"`
	Publisher *string  `json:"publisher,omitempty"`
	Stock     int      `json:"stock"`
}

func SeedBooksFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var books []BookSeed
	if err := sonic.Unmarshal(file, &books); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, b := range books {
		var existing model.BookModel
		if err := db.Where("isbn = ?", b.ISBN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Buku dengan ISBN %s sudah ada, lewati...", b.ISBN)
			continue
		}

		newBook := model.BookModel{
			Title:     b.Title,
			Authors:   pq.StringArray(b.Authors),
			ISBN:      b.ISBN,
			Publisher: b.Publisher,
			Stock:     b.Stock,
		}
		if err := db.Create(&newBook).Error; err != nil {
			log.Printf("❌ Gagal seed buku %s: %v", b.Title, err)
			continue
		}
		log.Printf("✅ Buku %s berhasil di-seed.", b.Title)
	}
}
