package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var UserSortable = []string{"name", "email", "role", "created_at"}

var UserScope = qb.Scope{
	DefaultSort: "name",
	Search: qb.AnyOf(
		qb.Contains("users.name"),
		qb.Contains("users.email"),
	),
}
