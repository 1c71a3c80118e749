package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BookRoutes "perpusku_backend/internals/features/library/books/route"
	MemberRoutes "perpusku_backend/internals/features/library/members/route"
	TransactionRoutes "perpusku_backend/internals/features/library/transactions/route"
)

// LibraryRoutes memasang ketiga resource perpustakaan di bawah prefix API.
// Contoh akses: /v1/books, /v1/members, /v1/transactions
func LibraryRoutes(api fiber.Router, db *gorm.DB) {
	BookRoutes.BookRoutes(api, db)
	MemberRoutes.MemberRoutes(api, db)
	TransactionRoutes.TransactionRoutes(api, db)
}
