package finder

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a lookup that never produced a usable answer: the
// backend could not be reached or its response could not be decoded.
var ErrUnavailable = errors.New("carpark backend unavailable")

// BackendError is an application-level failure reported by a reachable
// backend through a non-2xx response.
type BackendError struct {
	StatusCode int
	// Message is the backend's "error" field, empty when it sent none.
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}
