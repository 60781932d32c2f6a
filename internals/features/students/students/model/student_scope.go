package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var StudentSortable = []string{"name", "nisn"}

var StudentScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("students.name"),
		qb.ContainsRaw("students.nisn"),
		qb.Related(qb.Relation{Table: "guardians", On: "guardians.id = students.guardian_id"},
			qb.Contains("guardians.name")),
	),
}
