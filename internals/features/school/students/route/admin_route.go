package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "schoolku_backend/internals/features/school/students/controller"
)

// Rute ADMIN (harus sudah di-mount di /api/a dan ada middleware auth di atasnya)
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/school/students")
	students.Get("/", ctl.List)
	students.Post("/", ctl.Create)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
