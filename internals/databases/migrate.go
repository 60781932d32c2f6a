package database

import (
	"fmt"

	"gorm.io/gorm"

	academicYearModel "schoolku_backend/internals/features/academics/academic_years/model"
	schoolAcademicYearModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	summativeModel "schoolku_backend/internals/features/assessments/summatives/model"
	classroomStudentModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	guardianModel "schoolku_backend/internals/features/students/guardians/model"
	studentModel "schoolku_backend/internals/features/students/students/model"
	teacherModel "schoolku_backend/internals/features/teachers/teachers/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

// Models dalam urutan dependensi (parent dulu).
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&academicYearModel.AcademicYearModel{},
		&schoolModel.SchoolModel{},
		&schoolAcademicYearModel.SchoolAcademicYearModel{},
		&teacherModel.TeacherModel{},
		&guardianModel.GuardianModel{},
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&classroomModel.ClassroomModel{},
		&classroomStudentModel.ClassroomStudentModel{},
		&summativeModel.SummativeModel{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}
