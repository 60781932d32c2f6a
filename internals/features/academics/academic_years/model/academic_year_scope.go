package model

import qb "schoolku_backend/internals/helpers/querybuilder"

var AcademicYearSortable = []string{"name", "start", "end"}

var AcademicYearScope = qb.Scope{
	DefaultSort: "name",
	Search:      qb.AnyOf(qb.Contains("academic_years.name")),
}
