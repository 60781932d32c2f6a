package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var TeacherSortable = []string{"name", "nip"}

var TeacherScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("teachers.name"),
		qb.ContainsRaw("teachers.nip"),
		qb.Related(qb.Relation{Table: "users", On: "users.id = teachers.user_id"},
			qb.Contains("users.email")),
	),
}
