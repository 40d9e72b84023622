package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tplCtl "schoolku_backend/internals/features/discipline/form_templates/controller"
)

// Rute ADMIN (harus sudah di-mount di /api/a dan ada middleware auth di atasnya)
func FormTemplateAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tplCtl.NewFormTemplateController(db)

	tpl := r.Group("/discipline/form-templates")
	tpl.Get("/", ctl.List)
	tpl.Get("/:id", ctl.GetByID)
	tpl.Post("/", ctl.Create)
	tpl.Put("/:id", ctl.Update)
	tpl.Delete("/:id", ctl.Delete)

	// lifecycle actions
	tpl.Patch("/:id/toggle-status", ctl.ToggleStatus)
	tpl.Patch("/:id/set-default", ctl.SetDefault)
	tpl.Post("/:id/clone", ctl.Clone)
}
