package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// URL: /reviews?page=2&limit=10
// → ParsePagination() → Pagination{Limit:10, Page:2, Offset:10}
// → Window(len(list)) → list[10:20], TotalPages, HasNext, etc.
// Pagination holds pagination info and computed metadata.
type Pagination struct {
	Limit      int  `json:"limit"`  // items per page
	Offset     int  `json:"offset"` // index of the first item on the page
	Page       int  `json:"page"`   // current page number, 1-based
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePagination parses ?limit=...&page=... Keys are case sensitive.
// Unparseable values fall back to the defaults.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit: DefaultLimit,
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = DefaultLimit
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	// Keep Page*Limit representable.
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination once the total item count is known.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.Limit) < total
}

// Window computes the metadata for total items and returns the slice bounds
// of the current page. A page past the end yields an empty window.
func (p *Pagination) Window(total int) (start, end int) {
	p.ComputeMeta(total)
	start = max(0, min(p.Offset, total))
	end = min(start+p.Limit, total)
	return start, end
}

// Query returns q with page set to the given page number.
func (p Pagination) Query(q url.Values, page int) string {
	out := url.Values{}
	for k, v := range q {
		out[k] = v
	}
	out.Set("page", strconv.Itoa(page))
	if p.Limit != DefaultLimit {
		out.Set("limit", strconv.Itoa(p.Limit))
	}
	return out.Encode()
}
