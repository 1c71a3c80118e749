package seeds

import (
	"gorm.io/gorm"

	library "perpusku_backend/internals/seeds/library"
)

// RunAllSeeds mengisi data awal perpustakaan (idempotent:
// baris yang sudah ada dilewati berdasarkan ISBN/email).
func RunAllSeeds(db *gorm.DB) {
	library.SeedBooksFromJSON(db, "internals/seeds/library/data_books.json")
	library.SeedMembersFromJSON(db, "internals/seeds/library/data_members.json")
}
