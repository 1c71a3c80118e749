package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transactionController "perpusku_backend/internals/features/library/transactions/controller"
)

// Panggil dengan: route.TransactionRoutes(api, db)
// Hasil endpoint: /v1/transactions/...
func TransactionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := transactionController.NewTransactionsController(db)

	transactions := r.Group("/transactions")

	transactions.Post("/", ctl.Create)
	transactions.Get("/", ctl.List)
	transactions.Get("/:id/detail", ctl.GetByID)
	transactions.Put("/:id", ctl.Update)
	transactions.Delete("/:id", ctl.Delete)
}
