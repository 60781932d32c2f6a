package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectCtl "schoolku_backend/internals/features/academics/subjects/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Base: /api/a/schools/:school_id/subjects
func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := subjectCtl.NewSubjectController(db, v, reg)

	r := admin.Group("/schools/:school_id/subjects")
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}

// Base: /api/u/schools/:school_id/subjects
func SubjectUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := subjectCtl.NewSubjectController(db, v, reg)

	r := user.Group("/schools/:school_id/subjects")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
}
