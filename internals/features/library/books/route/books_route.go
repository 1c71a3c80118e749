package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	bookController "perpusku_backend/internals/features/library/books/controller"
	bookService "perpusku_backend/internals/features/library/books/service"
	"perpusku_backend/internals/middlewares"
)

// Panggil dengan: route.BookRoutes(api, db)
// Hasil endpoint: /v1/books/...
func BookRoutes(r fiber.Router, db *gorm.DB) {
	feed := bookService.NewCatalogFeed(configs.CatalogFeedURL)
	ctl := bookController.NewBooksController(db, feed)

	books := r.Group("/books")

	// route statis dulu, sebelum /:id
	books.Get("/search", ctl.Search)
	books.Post("/import", middlewares.ImportRateLimiter(), ctl.Import)

	books.Post("/", ctl.Create)
	books.Get("/", ctl.List)
	books.Get("/:id/detail", ctl.GetByID)
	books.Put("/:id", ctl.Update)
	books.Delete("/:id", ctl.Delete)
}
