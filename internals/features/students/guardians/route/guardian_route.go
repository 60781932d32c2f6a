package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	guardianCtl "schoolku_backend/internals/features/students/guardians/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Base: /api/a/guardians (data pribadi → admin saja)
func GuardianAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := guardianCtl.NewGuardianController(db, v, reg)

	r := admin.Group("/guardians")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}
