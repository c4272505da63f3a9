package core

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means a table could not be fetched: transport
	// failure, timeout, non-2xx status, or an unreadable payload. The whole
	// view fails; no partial data is returned.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNotFound means the requested country code matched no profile.
	ErrNotFound = errors.New("country not found")
)

// SourceError records which table failed and why.
type SourceError struct {
	Table Table
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.Table, ErrSourceUnavailable, e.Err)
}

// Is lets errors.Is match ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err as a source failure for table.
func NewSourceError(table Table, err error) error {
	return &SourceError{Table: table, Err: err}
}

// IsTimeout reports whether err was caused by a deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
