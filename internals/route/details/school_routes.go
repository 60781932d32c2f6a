package details

import (
	"github.com/gofiber/fiber/v2"

	classroomStudentRoute "schoolku_backend/internals/features/classrooms/classroom_students/route"
	classroomRoute "schoolku_backend/internals/features/classrooms/classrooms/route"
	schoolRoute "schoolku_backend/internals/features/schools/schools/route"
	guardianRoute "schoolku_backend/internals/features/students/guardians/route"
	studentRoute "schoolku_backend/internals/features/students/students/route"
	teacherRoute "schoolku_backend/internals/features/teachers/teachers/route"
)

// Sekolah beserta isinya: guru, siswa, wali, kelas, anggota kelas.
func SchoolAdminRoutes(admin fiber.Router, d Deps) {
	schoolRoute.SchoolAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	teacherRoute.TeacherAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	guardianRoute.GuardianAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	studentRoute.StudentAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	classroomRoute.ClassroomAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
	classroomStudentRoute.ClassroomStudentAdminRoutes(admin, d.DB, d.Validator, d.Scopes)
}

func SchoolUserRoutes(user fiber.Router, d Deps) {
	schoolRoute.SchoolUserRoutes(user, d.DB, d.Validator, d.Scopes)
	teacherRoute.TeacherUserRoutes(user, d.DB, d.Validator, d.Scopes)
	studentRoute.StudentUserRoutes(user, d.DB, d.Validator, d.Scopes)
	classroomRoute.ClassroomUserRoutes(user, d.DB, d.Validator, d.Scopes)
	classroomStudentRoute.ClassroomStudentUserRoutes(user, d.DB, d.Validator, d.Scopes)
}
