package api

import (
	"net/http"
	"strconv"

	"github.com/joestump/stack-underflow/internal/store"
)

// parsePagination extracts offset and max_results from query parameters.
// Absent parameters stay nil so Validate can apply its defaults; anything
// that is not a non-negative integer is rejected rather than ignored.
func parsePagination(r *http.Request) (store.Pagination, error) {
	q := r.URL.Query()

	offset, err := optionalCount(q.Get("offset"), q.Has("offset"))
	if err != nil {
		return store.Pagination{}, err
	}
	maxResults, err := optionalCount(q.Get("max_results"), q.Has("max_results"))
	if err != nil {
		return store.Pagination{}, err
	}
	return store.Pagination{Offset: offset, MaxResults: maxResults}, nil
}

func optionalCount(raw string, present bool) (*int, error) {
	if !present {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, store.ErrPaginationInvalid
	}
	return &n, nil
}
