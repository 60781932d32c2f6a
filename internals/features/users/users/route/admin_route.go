// file: internals/features/users/users/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userCtl "schoolku_backend/internals/features/users/users/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// Base: /api/a/users
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := userCtl.NewUserController(db, v, reg)

	r := admin.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola user"), constants.AdminOnly...),
	)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}
