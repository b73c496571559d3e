package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/wordmap/pkg/query"
)

// PageRequest is a client request for one page of a listing.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps PageSize into [1, cfg.MaxPageSize], substituting
// cfg.DefaultPageSize when none was requested, and clamps Page so that
// Offset cannot overflow.
func (r *PageRequest) Normalize(cfg Config) {
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = max(min(r.PageSize, cfg.MaxPageSize), 1)
	r.Page = min(max(r.Page, 1), math.MaxInt/r.PageSize)
}

func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, search and sort from values.
// Malformed numbers fall back to defaults and blank searches are ignored.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	req := PageRequest{
		Page:     intParam(values, "page"),
		PageSize: intParam(values, "page_size"),
		Sort:     query.ParseSortFields(values.Get("sort")),
	}
	if s := strings.TrimSpace(values.Get("search")); s != "" {
		req.Search = &s
	}

	req.Normalize(cfg)
	return req
}

func intParam(values url.Values, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(values.Get(name)))
	if err != nil {
		return 0
	}
	return n
}

// PageResult is one page of T with the metadata a client needs to page through the rest.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPageResult builds a PageResult. An empty listing still reports one page.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 1
	if pageSize > 0 && total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}
