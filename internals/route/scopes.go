package routes

import (
	academicYearModel "schoolku_backend/internals/features/academics/academic_years/model"
	sayModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	summativeModel "schoolku_backend/internals/features/assessments/summatives/model"
	classroomStudentModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	guardianModel "schoolku_backend/internals/features/students/guardians/model"
	studentModel "schoolku_backend/internals/features/students/students/model"
	teacherModel "schoolku_backend/internals/features/teachers/teachers/model"
	userModel "schoolku_backend/internals/features/users/users/model"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Scopes mendaftarkan search/sort scope semua entity yang punya endpoint list.
func Scopes() *qb.Registry {
	reg := qb.NewRegistry()
	qb.Register[userModel.UserModel](reg, userModel.UserScope)
	qb.Register[academicYearModel.AcademicYearModel](reg, academicYearModel.AcademicYearScope)
	qb.Register[schoolModel.SchoolModel](reg, schoolModel.SchoolScope)
	qb.Register[sayModel.SchoolAcademicYearModel](reg, sayModel.SchoolAcademicYearScope)
	qb.Register[teacherModel.TeacherModel](reg, teacherModel.TeacherScope)
	qb.Register[guardianModel.GuardianModel](reg, guardianModel.GuardianScope)
	qb.Register[studentModel.StudentModel](reg, studentModel.StudentScope)
	qb.Register[subjectModel.SubjectModel](reg, subjectModel.SubjectScope)
	qb.Register[classroomModel.ClassroomModel](reg, classroomModel.ClassroomScope)
	qb.Register[classroomStudentModel.ClassroomStudentModel](reg, classroomStudentModel.ClassroomStudentScope)
	qb.Register[summativeModel.SummativeModel](reg, summativeModel.SummativeScope)
	return reg
}
