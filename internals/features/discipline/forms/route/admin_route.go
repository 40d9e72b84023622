package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formCtl "schoolku_backend/internals/features/discipline/forms/controller"
)

// Rute ADMIN/TEACHER (harus sudah di-mount di /api/a dan ada middleware auth di atasnya)
func FormAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := formCtl.NewFormController(db)

	forms := r.Group("/discipline/forms")

	// /stats harus terdaftar sebelum /:id
	forms.Get("/stats", ctl.Stats)

	forms.Get("/", ctl.List)
	forms.Get("/:id", ctl.GetByID)
	forms.Post("/", ctl.Create)
	forms.Put("/:id", ctl.Update)
	forms.Delete("/:id", ctl.Delete)

	// lifecycle
	forms.Post("/:id/submit", ctl.Submit)
	forms.Post("/:id/complete", ctl.Complete)
}
