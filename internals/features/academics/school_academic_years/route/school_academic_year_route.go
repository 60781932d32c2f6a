package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sayCtl "schoolku_backend/internals/features/academics/school_academic_years/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Base: /api/a/schools/:school_id/academic-years
func SchoolAcademicYearAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := sayCtl.NewSchoolAcademicYearController(db, v, reg)

	r := admin.Group("/schools/:school_id/academic-years")
	r.Post("/", ctl.Open)
	r.Delete("/:id", ctl.Close)
}

// Base: /api/u/schools/:school_id/academic-years
func SchoolAcademicYearUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := sayCtl.NewSchoolAcademicYearController(db, v, reg)

	user.Get("/schools/:school_id/academic-years", ctl.List)
}
