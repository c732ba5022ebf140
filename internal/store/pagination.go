package store

const (
	DefaultOffset     = 0
	DefaultMaxResults = 10
	// MaxResultsLimit is the largest page a client may request. Larger
	// requests are rejected rather than clamped.
	MaxResultsLimit = 100
)

// Pagination is untrusted paging input, typically from
// /questions?offset=0&max_results=25. Nil fields take their defaults.
type Pagination struct {
	Offset     *int `json:"offset,omitempty"`
	MaxResults *int `json:"max_results,omitempty"`
}

// ValidatedPagination is paging input after defaulting and bounds checks. It
// is safe to use for slicing a result set.
type ValidatedPagination struct {
	Offset     int `json:"offset"`
	MaxResults int `json:"max_results"`
}

// Validate applies defaults and enforces MaxResultsLimit.
//
//	Pagination{}.Validate()                      // {Offset: 0, MaxResults: 10}
//	Pagination{MaxResults: ptr(150)}.Validate()  // MaximumPageSizeExceeded(150)
func (p Pagination) Validate() (ValidatedPagination, error) {
	vp := ValidatedPagination{Offset: DefaultOffset, MaxResults: DefaultMaxResults}

	if p.Offset != nil {
		if *p.Offset < 0 {
			return ValidatedPagination{}, ErrPaginationInvalid
		}
		vp.Offset = *p.Offset
	}

	if p.MaxResults != nil {
		switch n := *p.MaxResults; {
		case n < 0:
			return ValidatedPagination{}, ErrPaginationInvalid
		case n > MaxResultsLimit:
			return ValidatedPagination{}, ErrMaximumPageSizeExceeded(n)
		default:
			vp.MaxResults = n
		}
	}

	return vp, nil
}

// Raw converts vp back into untrusted input. Raw().Validate() returns vp.
func (vp ValidatedPagination) Raw() Pagination {
	offset, maxResults := vp.Offset, vp.MaxResults
	return Pagination{Offset: &offset, MaxResults: &maxResults}
}

// Window returns the slice bounds of the page within a collection of n items.
func (vp ValidatedPagination) Window(n int) (start, end int) {
	start = min(vp.Offset, n)
	end = start + min(vp.MaxResults, n-start)
	return start, end
}

// PaginatedResponse carries one page of items along with the paging that
// produced it, so a client can build the request for the next page.
type PaginatedResponse[T any] struct {
	Page  ValidatedPagination `json:"paginationContext"`
	Items []T                 `json:"items"`
}

// Paginate cuts the page described by vp out of all.
func Paginate[T any](vp ValidatedPagination, all []T) PaginatedResponse[T] {
	start, end := vp.Window(len(all))
	items := make([]T, end-start)
	copy(items, all[start:end])
	return PaginatedResponse[T]{Page: vp, Items: items}
}
