package details

import (
	"github.com/gofiber/fiber/v2"

	summativeRoute "schoolku_backend/internals/features/assessments/summatives/route"
)

func AssessmentTeacherRoutes(teacher fiber.Router, d Deps) {
	summativeRoute.SummativeTeacherRoutes(teacher, d.DB, d.Validator, d.Scopes)
}

func AssessmentUserRoutes(user fiber.Router, d Deps) {
	summativeRoute.SummativeUserRoutes(user, d.DB, d.Validator, d.Scopes)
}
