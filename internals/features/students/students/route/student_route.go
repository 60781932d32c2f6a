package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "schoolku_backend/internals/features/students/students/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Base: /api/a/schools/:school_id/students
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := studentCtl.NewStudentController(db, v, reg)

	r := admin.Group("/schools/:school_id/students")
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}

// Base: /api/u/schools/:school_id/students
func StudentUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := studentCtl.NewStudentController(db, v, reg)

	r := user.Group("/schools/:school_id/students")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
}
