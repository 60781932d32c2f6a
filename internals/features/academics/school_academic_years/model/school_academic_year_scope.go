package model

import (
	"gorm.io/gorm"

	qb "schoolku_backend/internals/helpers/querybuilder"
)

const joinAcademicYears = "JOIN academic_years ON academic_years.id = school_academic_years.academic_year_id"

var SchoolAcademicYearSortable = []string{"name", "start", "end"}

// Search & sort memakai kolom academic_years.
var SchoolAcademicYearScope = qb.Scope{
	DefaultSort: "start",
	Search: qb.AnyOf(
		qb.Related(qb.Relation{
			Table: "academic_years",
			On:    "academic_years.id = school_academic_years.academic_year_id",
		}, qb.Contains("academic_years.name")),
	),
	Sort: func(tx *gorm.DB, field, direction string) *gorm.DB {
		return tx.Joins(joinAcademicYears).Order(qb.OrderBy("academic_years", field, direction))
	},
}
