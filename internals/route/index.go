// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	tplRoutes "schoolku_backend/internals/features/discipline/form_templates/route"
	formRoutes "schoolku_backend/internals/features/discipline/forms/route"
	studentRoutes "schoolku_backend/internals/features/school/students/route"
	middlewares "schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth_school"
	featureMiddleware "schoolku_backend/internals/middlewares/features"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	BaseRoutes(api, db)

	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ================= ADMIN/TEACHER =================
	admin := api.Group("/a",
		auth,
		featureMiddleware.RequireRoles(
			constants.RoleErrorTeacher("kedisiplinan"),
			constants.TeacherAndAbove...,
		),
		middlewares.MutationRateLimiter(),
	)
	tplRoutes.FormTemplateAdminRoutes(admin, db)
	formRoutes.FormAdminRoutes(admin, db)
	studentRoutes.StudentAdminRoutes(admin, db)

	// ================= USER (student/parent) =================
	user := api.Group("/u",
		auth,
		featureMiddleware.RequireRoles(
			constants.RoleErrorAcknowledger("kedisiplinan"),
			constants.AcknowledgerRoles...,
		),
	)
	formRoutes.FormUserRoutes(user, db)
}
