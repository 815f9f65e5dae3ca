package helpers

import (
	"net/http"
	"strconv"

	"festivalcms/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePagination reads page and limit (or page_size) from the query string and clamps
// them. Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	page := positiveInt(q.Get("page"), DefaultPage)
	size := DefaultPageSize
	if s := q.Get("limit"); s != "" {
		size = positiveInt(s, DefaultPageSize)
	} else if s := q.Get("page_size"); s != "" {
		size = positiveInt(s, DefaultPageSize)
	}
	return domain.PaginationParams{Page: page, PageSize: min(size, MaxPageSize)}
}

func positiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationMeta computes TotalPages as ceiling(total / pageSize), or 0 when pageSize is 0.
func NewPaginationMeta(p domain.PaginationParams, total int) PaginationMeta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}
	return PaginationMeta{Page: p.Page, PageSize: p.PageSize, Total: total, TotalPages: totalPages}
}

// Page is one page of a list response.
type Page[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}
