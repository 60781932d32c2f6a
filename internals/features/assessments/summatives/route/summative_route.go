package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	summativeCtl "schoolku_backend/internals/features/assessments/summatives/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

const basePath = "/schools/:school_id/classrooms/:classroom_id/summatives"

// Base: /api/t (guru & admin)
func SummativeTeacherRoutes(teacher fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := summativeCtl.NewSummativeController(db, v, reg)

	r := teacher.Group(basePath,
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("mengelola nilai sumatif"),
			constants.TeacherAndAbove...,
		),
	)
	r.Post("/", ctl.Upsert)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}

// Base: /api/u
func SummativeUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := summativeCtl.NewSummativeController(db, v, reg)

	r := user.Group(basePath)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
}
