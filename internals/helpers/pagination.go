// file: internals/helpers/pagination.go
package helper

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/helpers/querybuilder"
)

// ValidationError dibalas 422 oleh ErrorHandler.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

var perPageTag = func() string {
	opts := make([]string, 0, len(querybuilder.AllowedPerPage))
	for _, n := range querybuilder.AllowedPerPage {
		opts = append(opts, strconv.Itoa(n))
	}
	return "oneof=" + strings.Join(opts, " ")
}()

// ParseListQuery membaca parameter list endpoint:
//
//	?filter[q]=...&sort_by=name&sort_direction=desc&per_page=20&page=2
//
// sortable adalah allow-list sort_by untuk entity ini. Parameter yang tidak
// valid dikembalikan sebagai *ValidationError sebelum query dijalankan.
func ParseListQuery(c *fiber.Ctx, v *validator.Validate, sortable ...string) (querybuilder.Params, error) {
	if v == nil {
		v = validator.New()
	}
	verr := &ValidationError{}

	p := querybuilder.Params{
		Query:         c.Query("filter[q]", c.Query("q")),
		SortBy:        strings.TrimSpace(c.Query("sort_by")),
		SortDirection: strings.ToLower(strings.TrimSpace(c.Query("sort_direction"))),
	}

	if raw := strings.TrimSpace(c.Query("per_page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("per_page", "per_page must be a number")
		} else {
			check(v, verr, "per_page", n, perPageTag)
			p.PerPage = n
		}
	}
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("page", "page must be a number")
		} else {
			check(v, verr, "page", n, "min=1")
			p.Page = n
		}
	}
	if p.SortDirection != "" {
		check(v, verr, "sort_direction", p.SortDirection, "oneof="+querybuilder.Asc+" "+querybuilder.Desc)
	}
	if p.SortBy != "" {
		if len(sortable) == 0 {
			verr.add("sort_by", "sort_by is not supported")
		} else {
			check(v, verr, "sort_by", p.SortBy, "oneof="+strings.Join(sortable, " "))
		}
	}

	if len(verr.Fields) > 0 {
		return querybuilder.Params{}, verr
	}
	return p, nil
}

func check(v *validator.Validate, verr *ValidationError, field string, value any, tag string) {
	err := v.Var(value, tag)
	if err == nil {
		return
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		verr.add(field, err.Error())
		return
	}
	for _, fe := range ve {
		// Var() tidak punya nama field, pesan terjemahan diawali spasi
		verr.add(field, field+" "+strings.TrimSpace(translate(v, fe)))
	}
}
