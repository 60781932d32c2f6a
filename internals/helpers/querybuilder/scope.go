// file: internals/helpers/querybuilder/scope.go
package querybuilder

import (
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SearchFunc builds the search condition for an already lowercased term.
// The condition is AND-ed with whatever the caller put on the base query.
type SearchFunc func(term string) clause.Expression

// SortResolver orders tx by field/direction, usually through a joined table.
// When an entity declares one, the Sort stage adds no same-table ORDER BY.
type SortResolver func(tx *gorm.DB, field, direction string) *gorm.DB

// Scope is the per-entity search/sort declaration.
type Scope struct {
	DefaultSort string
	Search      SearchFunc   // nil: Filter stage is a no-op
	Sort        SortResolver // nil: order by the same-named column
}

// Registry maps entity types to their Scope. It is filled once while wiring
// the app and only read afterwards.
type Registry struct {
	scopes map[reflect.Type]Scope
}

func NewRegistry() *Registry {
	return &Registry{scopes: make(map[reflect.Type]Scope)}
}

// Register attaches s to entity type T, replacing any previous declaration.
func Register[T any](r *Registry, s Scope) {
	r.scopes[typeOf[T]()] = s
}

// Lookup returns the Scope of T, or the zero Scope when T never registered.
func Lookup[T any](r *Registry) Scope {
	if r == nil {
		return Scope{}
	}
	return r.scopes[typeOf[T]()]
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
