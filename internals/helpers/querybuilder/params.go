// file: internals/helpers/querybuilder/params.go
package querybuilder

const (
	Asc  = "asc"
	Desc = "desc"

	DefaultPage    = 1
	DefaultPerPage = 10
)

// AllowedPerPage adalah opsi per_page yang diterima boundary (request validation).
var AllowedPerPage = []int{10, 20, 30, 40, 50, 100}

// Params berisi parameter list yang SUDAH divalidasi di boundary.
// Pipeline tidak memvalidasi ulang.
type Params struct {
	Query         string // filter[q]
	SortBy        string
	SortDirection string // asc|desc
	PerPage       int
	Page          int
}

func (p Params) perPage() int {
	if p.PerPage <= 0 {
		return DefaultPerPage
	}
	return p.PerPage
}

func (p Params) page() int {
	if p.Page <= 0 {
		return DefaultPage
	}
	return p.Page
}

// IsAllowedPerPage reports whether n is one of AllowedPerPage.
func IsAllowedPerPage(n int) bool {
	for _, v := range AllowedPerPage {
		if v == n {
			return true
		}
	}
	return false
}
