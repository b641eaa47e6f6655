package models

import "fmt"

// MalformedSourceError means the store schema itself is broken (a required
// column is missing). It is fatal to the load: no partial normalization is
// returned. Per-row data problems never raise it.
type MalformedSourceError struct {
	Table  string
	Column string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source: table %q is missing required column %q", e.Table, e.Column)
}

// StoreUnavailableError wraps a failed gateway call. The triggering read or
// write is surfaced once and not retried.
type StoreUnavailableError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s %q: %v", e.Op, e.Table, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
