// file: internals/features/academics/academic_years/route/academic_year_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	ayCtl "schoolku_backend/internals/features/academics/academic_years/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// Base: /api/a/academic-years
func AcademicYearAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := ayCtl.NewAcademicYearController(db, v, reg)

	r := admin.Group("/academic-years",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola tahun akademik"), constants.AdminOnly...),
	)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}

// Base: /api/u/academic-years (read-only)
func AcademicYearUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := ayCtl.NewAcademicYearController(db, v, reg)

	r := user.Group("/academic-years")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
}
