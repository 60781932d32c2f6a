package model

import (
	"gorm.io/gorm"

	qb "schoolku_backend/internals/helpers/querybuilder"
)

const (
	joinClassroomStudents = "JOIN classroom_students ON classroom_students.id = summatives.classroom_student_id"
	joinStudents          = "JOIN students ON students.id = classroom_students.student_id"
)

var SummativeSortable = []string{"name", "nisn", "score"}

var SummativeScope = qb.Scope{
	DefaultSort: "name",
	// summatives -> classroom_students -> students
	Search: qb.AnyOf(
		qb.Related(qb.Relation{Table: "classroom_students", On: "classroom_students.id = summatives.classroom_student_id"},
			qb.Related(qb.Relation{Table: "students", On: "students.id = classroom_students.student_id"},
				qb.Contains("students.name"),
			),
		),
	),
	Sort: func(tx *gorm.DB, field, direction string) *gorm.DB {
		if field == "score" {
			return tx.Order(qb.OrderBy("summatives", "score", direction))
		}
		return tx.Joins(joinClassroomStudents).Joins(joinStudents).
			Order(qb.OrderBy("students", field, direction))
	},
}
