package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtl "schoolku_backend/internals/features/teachers/teachers/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Base: /api/a/schools/:school_id/teachers
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := teacherCtl.NewTeacherController(db, v, reg)

	r := admin.Group("/schools/:school_id/teachers")
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}

// Base: /api/u/schools/:school_id/teachers
func TeacherUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := teacherCtl.NewTeacherController(db, v, reg)

	r := user.Group("/schools/:school_id/teachers")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
}
