package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formCtl "schoolku_backend/internals/features/discipline/forms/controller"
)

// Rute USER (student/parent) — di-mount di /api/u dengan auth +
// RequireRoles(AcknowledgerRoles) di atasnya. Controller tetap memeriksa
// role per langkah (student ack vs parent ack).
func FormUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := formCtl.NewFormController(db)

	forms := r.Group("/discipline/forms")
	forms.Post("/:id/acknowledge", ctl.Acknowledge)
}
