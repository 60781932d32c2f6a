package model

import (
	"gorm.io/gorm"

	qb "schoolku_backend/internals/helpers/querybuilder"
)

const joinStudents = "JOIN students ON students.id = classroom_students.student_id"

var ClassroomStudentSortable = []string{"name", "nisn"}

var ClassroomStudentScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Related(qb.Relation{Table: "students", On: "students.id = classroom_students.student_id"},
			qb.Contains("students.name"),
			qb.ContainsRaw("students.nisn"),
		),
	),
	Sort: func(tx *gorm.DB, field, direction string) *gorm.DB {
		return tx.Joins(joinStudents).Order(qb.OrderBy("students", field, direction))
	},
}
