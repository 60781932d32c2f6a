package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var GuardianSortable = []string{"name"}

var GuardianScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("guardians.name"),
		qb.ContainsRaw("guardians.phone"),
	),
}
