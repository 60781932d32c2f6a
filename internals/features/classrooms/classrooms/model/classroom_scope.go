package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var ClassroomSortable = []string{"name", "level"}

// Cari nama kelas, nama wali kelas, atau email akun wali kelas.
var ClassroomScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("classrooms.name"),
		qb.Related(qb.Relation{Table: "teachers", On: "teachers.id = classrooms.teacher_id"},
			qb.Contains("teachers.name"),
			qb.Related(qb.Relation{Table: "users", On: "users.id = teachers.user_id"},
				qb.Contains("users.email")),
		),
	),
}
