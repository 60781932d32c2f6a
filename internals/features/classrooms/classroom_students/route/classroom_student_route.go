package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	csCtl "schoolku_backend/internals/features/classrooms/classroom_students/controller"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

const basePath = "/schools/:school_id/classrooms/:classroom_id/students"

func ClassroomStudentAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := csCtl.NewClassroomStudentController(db, v, reg)

	r := admin.Group(basePath)
	r.Post("/", ctl.Enroll)
	r.Delete("/:id", ctl.Remove)
}

func ClassroomStudentUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate, reg *qb.Registry) {
	ctl := csCtl.NewClassroomStudentController(db, v, reg)

	user.Get(basePath, ctl.List)
}
