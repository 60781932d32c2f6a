package details

import (
	"github.com/gofiber/fiber/v2"

	userRoute "schoolku_backend/internals/features/users/users/route"
)

// /api/a/users
func UserRoutes(admin fiber.Router, d Deps) {
	userRoute.UserAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
}
