package store

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a classified domain failure. Status and Message are everything a
// transport needs to build a response; none of them require inspecting store
// state.
type AppError interface {
	error
	Status() int
	Message() string
}

// AsAppError reports whether err (or anything it wraps) is an AppError.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// QuestionRepoError classifies failures of question and answer repository
// operations.
type QuestionRepoError int

const (
	// InvalidID means an identifier string was malformed (empty).
	InvalidID QuestionRepoError = iota + 1
	// UnableToWrite is reserved for storage backends that can fail to persist.
	UnableToWrite
	// IDNotFound means a lookup or foreign-key check found no question.
	IDNotFound
)

// Error returns a lower-case description for logs.
func (e QuestionRepoError) Error() string {
	switch e {
	case InvalidID:
		return "invalid question id"
	case UnableToWrite:
		return "unable to write question"
	case IDNotFound:
		return "question id not found"
	default:
		return fmt.Sprintf("question repo error %d", int(e))
	}
}

// Status returns the HTTP status for e.
func (e QuestionRepoError) Status() int {
	switch e {
	case InvalidID:
		return http.StatusBadRequest
	case IDNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for e.
func (e QuestionRepoError) Message() string {
	switch e {
	case InvalidID:
		return "Invalid Question Id provided"
	case IDNotFound:
		return "Unable to find provided question id"
	default:
		return "Unable to save question"
	}
}

// PaginationErrorKind distinguishes pagination failures.
type PaginationErrorKind int

const (
	// ValidationError is a generic failure to interpret pagination input.
	ValidationError PaginationErrorKind = iota + 1
	// MaximumPageSizeExceeded means max_results was above MaxResultsLimit.
	MaximumPageSizeExceeded
)

// PaginationError is returned by Pagination.Validate. Requested carries the
// offending max_results for MaximumPageSizeExceeded.
type PaginationError struct {
	Kind      PaginationErrorKind
	Requested int
}

// ErrPaginationInvalid is the generic pagination failure.
var ErrPaginationInvalid = &PaginationError{Kind: ValidationError}

// ErrMaximumPageSizeExceeded builds the error for an oversized page request.
func ErrMaximumPageSizeExceeded(requested int) *PaginationError {
	return &PaginationError{Kind: MaximumPageSizeExceeded, Requested: requested}
}

// Error returns a lower-case description for logs.
func (e *PaginationError) Error() string {
	if e.Kind == MaximumPageSizeExceeded {
		return fmt.Sprintf("maximum page size %d exceeded: %d", MaxResultsLimit, e.Requested)
	}
	return "invalid pagination"
}

// Is matches any PaginationError of the same kind and requested size.
func (e *PaginationError) Is(target error) bool {
	t, ok := target.(*PaginationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Requested == t.Requested
}

// Status is always 422.
func (e *PaginationError) Status() int {
	return http.StatusUnprocessableEntity
}

// Message returns the client-facing text for e.
func (e *PaginationError) Message() string {
	if e.Kind == MaximumPageSizeExceeded {
		return fmt.Sprintf("Maximum page size (%d) exceeded: %d", MaxResultsLimit, e.Requested)
	}
	return "Unable to determine pagination"
}

var (
	_ AppError = QuestionRepoError(0)
	_ AppError = (*PaginationError)(nil)
)
