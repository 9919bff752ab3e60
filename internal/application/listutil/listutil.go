package listutil

import (
	"net/url"
	"strconv"
)

// PageParams carries pagination parameters parsed from a request.
type PageParams struct {
	Page    int // 1-indexed page number
	PerPage int // rows per page
}

// FilterParams carries search and filter parameters.
type FilterParams struct {
	Search  string            // free-text search query
	Filters map[string]string // exact-match filters (e.g. discipline=prone)
}

// PageInfo carries pagination metadata for the response envelope.
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListParams combines all list view parameters.
type ListParams struct {
	PageParams
	FilterParams
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 50

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 20, 50, 100, 200}

// ParsePageParams extracts page and per_page from URL query values.
// PRE: none
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !isValidPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// ParseFilterParams extracts search and named filters from URL query values.
// PRE: filterKeys lists the allowed filter parameter names
// POST: returns FilterParams with only recognised keys
func ParseFilterParams(q url.Values, filterKeys []string) FilterParams {
	fp := FilterParams{
		Search:  q.Get("q"),
		Filters: make(map[string]string),
	}
	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			fp.Filters[key] = v
		}
	}
	return fp
}

// ParseListParams parses all list parameters from URL query values.
func ParseListParams(q url.Values, filterKeys []string) ListParams {
	return ListParams{
		PageParams:   ParsePageParams(q),
		FilterParams: ParseFilterParams(q, filterKeys),
	}
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0, perPage > 0, page >= 1
// POST: returns PageInfo with TotalPages computed; Page clamped to valid range
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the first row index for the current page.
// PRE: PageInfo is valid
// POST: Returns (Page-1) * PerPage
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Slice returns the bounds for slicing an in-memory result set to the
// current page. Leaderboards are ranked wholesale, so list endpoints
// paginate after ranking rather than in SQL.
// PRE: PageInfo was built with the set's total
// POST: 0 <= lo <= hi <= total
func (p PageInfo) Slice(total int) (lo, hi int) {
	lo = p.Offset()
	if lo > total {
		lo = total
	}
	hi = lo + p.PerPage
	if hi > total {
		hi = total
	}
	return lo, hi
}

func isValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}
