// middlewares/cors.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"perpusku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Allow-list dibatasi ke satu origin front-end (FRONTEND_ORIGIN).
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.FrontendOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
