// Package errs defines the error kinds the data-access layer surfaces to
// calling services. Callers match against the sentinel values with errors.Is;
// the concrete cause stays wrapped underneath.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDataAccess marks any failure reaching the relational store. A live
	// cache hit legitimately avoids the store, but no operation masks a store
	// outage with stale or empty data.
	ErrDataAccess = errors.New("data access failure")

	// ErrBadInput marks malformed caller input, e.g. a non-numeric cursor
	// token. Rejected at the boundary before any query runs.
	ErrBadInput = errors.New("bad input")

	// ErrAllocatorContended marks a business-identifier allocation that kept
	// failing after its bounded retries. A possibly-duplicate identifier is
	// never returned instead.
	ErrAllocatorContended = errors.New("identifier allocation contended")
)

// DataAccess wraps a store failure with the operation that hit it.
func DataAccess(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrDataAccess, cause)
}

// BadInputf reports invalid caller input.
func BadInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadInput, fmt.Sprintf(format, args...))
}

// Contended reports an allocation that exhausted its retries.
func Contended(prefix string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: prefix %q", ErrAllocatorContended, prefix)
	}
	return fmt.Errorf("%w: prefix %q: %w", ErrAllocatorContended, prefix, cause)
}
