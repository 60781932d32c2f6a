// file: internals/helpers/querybuilder/pipeline.go
package querybuilder

import (
	"fmt"

	"gorm.io/gorm"
)

// Run pushes tx through stages in order, adds the primary key tie-break,
// then counts and fetches one page of T.
//
// tx is the caller's base query (tenant conditions, context). It is not
// modified. preloads are applied to the page fetch only, gorm refuses
// Preload together with Count.
func Run[T any](tx *gorm.DB, reg *Registry, stages []Stage, p Params, preloads ...string) (Page[T], error) {
	target, err := targetOf[T](tx, reg)
	if err != nil {
		return Page[T]{}, err
	}

	q := tx.Session(&gorm.Session{}).Model(new(T))
	for _, stage := range stages {
		q = stage(q, target, p)
	}
	if target.PrimaryKey != "" {
		q = q.Order(OrderBy(target.Table, target.PrimaryKey, Asc))
	}

	perPage, page := p.perPage(), p.page()
	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	find := base.Offset((page - 1) * perPage).Limit(perPage)
	for _, name := range preloads {
		find = find.Preload(name)
	}
	items := make([]T, 0, perPage)
	if err := find.Find(&items).Error; err != nil {
		return Page[T]{}, err
	}
	return NewPage(items, total, page, perPage), nil
}

func targetOf[T any](tx *gorm.DB, reg *Registry) (Target, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(new(T)); err != nil {
		return Target{}, fmt.Errorf("querybuilder: parse %T: %w", *new(T), err)
	}
	t := Target{Scope: Lookup[T](reg), Table: stmt.Schema.Table}
	if pk := stmt.Schema.PrioritizedPrimaryField; pk != nil {
		t.PrimaryKey = pk.DBName
	}
	return t, nil
}
