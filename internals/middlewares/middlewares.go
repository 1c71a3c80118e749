package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"perpusku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery paling luar, lalu cors, logger, limiter).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
