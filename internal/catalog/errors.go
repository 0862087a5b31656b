// internal/catalog/errors.go
package catalog

import "fmt"

// Error describes a failed catalog request. Status is the HTTP status of a
// non-success response; it is zero when the transport itself failed before
// a response was received.
type Error struct {
	Op     string
	Status int
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog: %s returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("catalog: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the request failed before receiving a response
func (e *Error) IsTransport() bool {
	return e.Status == 0
}
