package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var SchoolSortable = []string{"name", "npsn"}

var SchoolScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("schools.name"),
		qb.ContainsRaw("schools.npsn"),
	),
}
