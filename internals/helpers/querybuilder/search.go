// file: internals/helpers/querybuilder/search.go
package querybuilder

import (
	"strings"

	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Match is one OR branch of a search predicate.
type Match struct {
	column string
	raw    bool
	rel    *Relation
	inner  []Match
}

// Relation describes a correlated sub-select used to search a related table.
// On must correlate Table with the outer query, e.g.
// "guardians.guardian_id = students.student_guardian_id".
type Relation struct {
	Table string // may contain JOINs for multi-hop paths
	On    string
}

// Contains matches when LOWER(column) contains the term.
func Contains(column string) Match {
	return Match{column: column}
}

// ContainsRaw matches the textual value of column without lowering it.
// Used for numeric-like identifiers (NISN, NIP, NPSN).
func ContainsRaw(column string) Match {
	return Match{column: column, raw: true}
}

// Related matches when a row of rel satisfies any of matches.
// Relations nest, so multi-hop searches are declared per entity.
func Related(rel Relation, matches ...Match) Match {
	r := rel
	return Match{rel: &r, inner: matches}
}

// AnyOf builds a SearchFunc: (m1 OR m2 OR ...) over a %term% pattern.
func AnyOf(matches ...Match) SearchFunc {
	return func(term string) clause.Expression {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		sql, vars := buildAny(matches, pattern)
		return clause.Expr{SQL: sql, Vars: vars}
	}
}

func buildAny(matches []Match, pattern string) (string, []any) {
	parts := make([]string, 0, len(matches))
	vars := make([]any, 0, len(matches))
	for _, m := range matches {
		sql, v := m.build(pattern)
		parts = append(parts, sql)
		vars = append(vars, v...)
	}
	if len(parts) == 0 {
		// nothing searchable: match nothing rather than everything
		return "1 = 0", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", vars
}

func (m Match) build(pattern string) (string, []any) {
	switch {
	case m.rel != nil:
		inner, vars := buildAny(m.inner, pattern)
		return "EXISTS (SELECT 1 FROM " + m.rel.Table + " WHERE " + m.rel.On + " AND " + inner + ")", vars
	case m.raw:
		return "CAST(" + m.column + " AS TEXT) LIKE ? ESCAPE '\\'", []any{pattern}
	default:
		return "LOWER(" + m.column + ") LIKE ? ESCAPE '\\'", []any{pattern}
	}
}
