package helpers

import (
	"net/http"
	"strconv"
	"strings"

	"techtalks/internal/domain"
)

// Participant list paging. PageSizeAll returns the whole list on one page,
// which is what the door and catering lists are printed from.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
	PageSizeAll     = "all"
)

// ParsePagination reads page and page_size from the query string. Invalid values fall back
// to the defaults and page_size is capped at MaxPageSize. page_size=all yields PageSize 0,
// which the repositories read as no limit.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	if strings.EqualFold(q.Get("page_size"), PageSizeAll) {
		return domain.PaginationParams{Page: DefaultPage}
	}
	return domain.PaginationParams{
		Page:     positiveInt(q.Get("page"), DefaultPage, 0),
		PageSize: positiveInt(q.Get("page_size"), DefaultPageSize, MaxPageSize),
	}
}

// positiveInt parses s as an int >= 1, capped at max when max > 0.
func positiveInt(s string, fallback, max int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

// PaginationMeta describes the page of participants in a list response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPaginationMeta builds the metadata for params over total participants.
// An unlimited page reports the whole list as a single page.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	meta := PaginationMeta{Page: params.Page, PageSize: params.PageSize, Total: total}
	if params.PageSize < 1 {
		meta.PageSize = total
		if total > 0 {
			meta.TotalPages = 1
		}
		return meta
	}
	meta.TotalPages = (total + params.PageSize - 1) / params.PageSize
	meta.HasNext = params.Page < meta.TotalPages
	return meta
}
