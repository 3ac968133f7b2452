package pagination

import "strconv"

// Meta contains metadata about a fetched page.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// TotalPages returns ceil(count / pageSize), or 0 for a non-positive size.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	return pages
}

// NewMeta derives page metadata for params and the server-reported count.
func NewMeta(params Params, totalCount int) Meta {
	current := params.Page
	if current < MinPage {
		current = MinPage
	}
	total := TotalPages(totalCount, params.PageSize)
	return Meta{
		CurrentPage: current,
		PageSize:    params.PageSize,
		TotalPages:  total,
		TotalItems:  totalCount,
		HasPrevious: CanPrev(current),
		HasNext:     CanNext(current, total),
	}
}

// CanPrev reports whether the Prev control is enabled.
func CanPrev(current int) bool {
	return current > 1
}

// CanNext reports whether the Next control is enabled. It is disabled on the
// last page and when there are no pages at all.
func CanNext(current, total int) bool {
	return total > 0 && current < total
}

// Prev returns the page before current and whether moving is allowed.
func Prev(current int) (int, bool) {
	if !CanPrev(current) {
		return current, false
	}
	return current - 1, true
}

// Next returns the page after current and whether moving is allowed.
func Next(current, total int) (int, bool) {
	if !CanNext(current, total) {
		return current, false
	}
	return current + 1, true
}

// Label renders "current / total", showing 1 when there are no pages.
func Label(current, total int) string {
	if total == 0 {
		total = 1
	}
	return strconv.Itoa(current) + " / " + strconv.Itoa(total)
}
