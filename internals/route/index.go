// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	routeDetails "perpusku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	// ===================== API v1 =====================
	log.Printf("[INFO] Mounting library routes di %s ...", configs.APIPrefix)
	api := app.Group(configs.APIPrefix)
	routeDetails.LibraryRoutes(api, db)
}
