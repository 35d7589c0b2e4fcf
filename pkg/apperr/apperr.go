// Package apperr defines the error taxonomy shared by every service:
// validation, not-found, conflict, dependency-unavailable and
// malformed-event. Callers classify with errors.Is against the sentinels.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation marks malformed or out-of-range input, rejected before
	// any state change.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced loan, evaluation or customer that does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks duplicate creation or an illegal state transition.
	ErrConflict = errors.New("conflict")
	// ErrDependencyUnavailable marks an unreachable synchronous collaborator.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrMalformedEvent marks an undecodable event payload; consumers log
	// and drop these.
	ErrMalformedEvent = errors.New("malformed event")
)

// Validation wraps a message as a validation error.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps a message as a not-found error.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflict wraps a message as a conflict error.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// DependencyUnavailable wraps a message as a dependency failure.
func DependencyUnavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDependencyUnavailable, fmt.Sprintf(format, args...))
}

// MalformedEvent wraps a message as an undecodable-event error.
func MalformedEvent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedEvent, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error to the REST status code of its kind.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
