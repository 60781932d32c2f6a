package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomCtl "schoolku_backend/internals/features/classrooms/classrooms/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

const basePath = "/schools/:school_id/academic-years/:say_id/classrooms"

func ClassroomAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := classroomCtl.NewClassroomController(db, v, reg)

	r := admin.Group(basePath)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}

func ClassroomUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := classroomCtl.NewClassroomController(db, v, reg)

	r := user.Group(basePath)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Get)
}
