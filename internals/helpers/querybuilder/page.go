// file: internals/helpers/querybuilder/page.go
package querybuilder

// Page is the list payload consumed by the data table ("Showing X to Y of Z").
// Field names are part of the client contract.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

// NewPage computes last_page and the 1-based inclusive from/to range.
// From and To are 0 when the page is empty.
func NewPage[T any](items []T, total int64, page, perPage int) Page[T] {
	if items == nil {
		items = []T{}
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	p := Page[T]{
		Items:       items,
		Total:       total,
		CurrentPage: page,
		LastPage:    last,
		PerPage:     perPage,
	}
	if len(items) > 0 {
		p.From = (page-1)*perPage + 1
		p.To = p.From + len(items) - 1
	}
	return p
}

// MapPage converts the items of a page, keeping the paging metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[U]{
		Items:       out,
		Total:       p.Total,
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		From:        p.From,
		To:          p.To,
	}
}
