// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/logger"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	routeDetails "schoolku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	deps := routeDetails.Deps{
		DB:        db,
		Validator: helper.NewValidator(),
		Scopes:    Scopes(),
	}

	BaseRoutes(app, db)

	// satu middleware (satu cache principal) untuk semua grup
	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              cfg.JWTSecret,
		DB:                  db,
		CacheTTL:            cfg.AuthCacheTTL,
		AllowCookieFallback: true,
	})

	// ===================== GROUPS =====================
	logger.Debug("setting up ADMIN group (auth + admin)")
	admin := app.Group("/api/a", auth,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("admin"), constants.AdminOnly...),
	)

	logger.Debug("setting up TEACHER group (auth + guru/admin)")
	teacher := app.Group("/api/t", auth,
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("guru"), constants.TeacherAndAbove...),
	)

	logger.Debug("setting up PRIVATE (user) group")
	user := app.Group("/api/u", auth)

	// ===================== MOUNT ROUTES =====================
	routeDetails.UserRoutes(admin, deps)

	routeDetails.AcademicAdminRoutes(admin, deps)
	routeDetails.AcademicUserRoutes(user, deps)

	routeDetails.SchoolAdminRoutes(admin, deps)
	routeDetails.SchoolUserRoutes(user, deps)

	routeDetails.AssessmentTeacherRoutes(teacher, deps)
	routeDetails.AssessmentUserRoutes(user, deps)

	NotFound(app)
	logger.Info("routes ready")
}
