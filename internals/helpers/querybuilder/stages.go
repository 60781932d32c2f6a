// file: internals/helpers/querybuilder/stages.go
package querybuilder

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Target is what a stage knows about the entity being listed.
type Target struct {
	Scope
	Table      string
	PrimaryKey string
}

// Stage transforms the query based on request params.
type Stage func(tx *gorm.DB, t Target, p Params) *gorm.DB

// DefaultStages dipakai oleh hampir semua endpoint list.
var DefaultStages = []Stage{Filter, Sort}

// Filter narrows tx with the entity search predicate for filter[q].
func Filter(tx *gorm.DB, t Target, p Params) *gorm.DB {
	term := strings.TrimSpace(p.Query)
	if term == "" || t.Search == nil {
		return tx
	}
	return tx.Where(t.Search(strings.ToLower(term)))
}

// Sort orders tx by sort_by/sort_direction, falling back to the entity default.
func Sort(tx *gorm.DB, t Target, p Params) *gorm.DB {
	field := p.SortBy
	if field == "" {
		field = t.DefaultSort
	}
	if field == "" {
		return tx
	}
	dir := p.SortDirection
	if dir != Desc {
		dir = Asc
	}

	if t.Sort != nil {
		return t.Sort(tx, field, dir)
	}
	return tx.Order(OrderBy(t.Table, field, dir))
}

// OrderBy is a quoted table.column ORDER BY item. Sort resolvers use it too.
func OrderBy(table, column, direction string) clause.OrderByColumn {
	return clause.OrderByColumn{
		Column: clause.Column{Table: table, Name: column},
		Desc:   direction == Desc,
	}
}
