package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "perpusku_backend/internals/features/library/members/controller"
)

// Panggil dengan: route.MemberRoutes(api, db)
// Hasil endpoint: /v1/members/...
func MemberRoutes(r fiber.Router, db *gorm.DB) {
	ctl := memberController.NewMembersController(db)

	members := r.Group("/members")

	// lookup by id ATAU name (query param) — sebelum /:id
	members.Get("/detail", ctl.GetBySelector)

	members.Post("/", ctl.Create)
	members.Get("/", ctl.List)
	members.Get("/:id/detail", ctl.GetByID)
	members.Put("/:id", ctl.Update)
	members.Delete("/:id", ctl.Delete)
}
