package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyPayload  = errors.New("order payload is empty")
)

// TransportError is returned when the order service answered with an
// unexpected status or the request failed outright. The raw status and a
// short message are kept for logging; user-facing replies stay generic.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("order api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("order api: %s", e.Message)
}
