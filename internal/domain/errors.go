package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrFetch                = errors.New("fetch failed")
)

// FieldError reports a raw record a supplier adapter could not turn into a Hotel.
type FieldError struct {
	Supplier string
	Field    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Supplier, ErrMissingRequiredField, e.Field)
}

func (e *FieldError) Unwrap() error { return ErrMissingRequiredField }

// FetchError wraps any failure retrieving a supplier payload
// (network, timeout, non-2xx status, undecodable body).
type FetchError struct {
	Endpoint string
	Status   int // 0 when no response was received
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() []error { return []error{ErrFetch, e.Err} }
