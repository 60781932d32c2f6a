package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolCtl "schoolku_backend/internals/features/schools/schools/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// Base: /api/a/schools
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := schoolCtl.NewSchoolController(db, v, reg)

	r := admin.Group("/schools",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola sekolah"), constants.AdminOnly...),
	)
	r.Post("/", ctl.Create)
	r.Patch("/:school_id", ctl.Patch)
	r.Delete("/:school_id", ctl.Delete)
}

// Base: /api/u/schools
func SchoolUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := schoolCtl.NewSchoolController(db, v, reg)

	r := user.Group("/schools")
	r.Get("/", ctl.List)
	r.Get("/:school_id", ctl.Get)
}
