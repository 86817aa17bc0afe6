// Package page implements the two pagination contracts: offset/limit tab
// pages and fixed-head overview sections.
package page

// Pagination describes a tab-mode page of a ranked list.
type Pagination struct {
	Offset     int
	Limit      int
	Total      int
	HasMore    bool
	NextOffset int
}

// Slice returns ranked[offset : offset+limit] with its pagination block.
// Total is the full ranked-list length before slicing.
func Slice[T any](ranked []T, offset, limit int) ([]T, Pagination) {
	total := len(ranked)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ranked[start:end], Pagination{
		Offset:     offset,
		Limit:      limit,
		Total:      total,
		HasMore:    offset+limit < total,
		NextOffset: offset + limit,
	}
}

// Head returns the first limit items and whether more remain. Overview
// sections are previews, not deep-pageable, so they always start at zero.
func Head[T any](ranked []T, limit int) ([]T, bool) {
	if len(ranked) <= limit {
		return ranked, false
	}
	return ranked[:limit], true
}
