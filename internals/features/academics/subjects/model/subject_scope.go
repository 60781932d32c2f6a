package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var SubjectSortable = []string{"name", "code"}

var SubjectScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("subjects.name"),
		qb.Contains("subjects.code"),
	),
}
