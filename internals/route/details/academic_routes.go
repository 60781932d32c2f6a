package details

import (
	"github.com/gofiber/fiber/v2"

	academicYearRoute "schoolku_backend/internals/features/academics/academic_years/route"
	sayRoute "schoolku_backend/internals/features/academics/school_academic_years/route"
	subjectRoute "schoolku_backend/internals/features/academics/subjects/route"
)

func AcademicAdminRoutes(admin fiber.Router, d Deps) {
	academicYearRoute.AcademicYearAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	sayRoute.SchoolAcademicYearAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	subjectRoute.SubjectAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
}

func AcademicUserRoutes(user fiber.Router, d Deps) {
	academicYearRoute.AcademicYearUserRoutes(user, d.DB, d.Validator, d.Scopes)
	sayRoute.SchoolAcademicYearUserRoutes(user, d.DB, d.Validator, d.Scopes)
	subjectRoute.SubjectUserRoutes(user, d.DB, d.Validator, d.Scopes)
}
