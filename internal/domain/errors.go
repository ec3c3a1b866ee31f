package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the store when no booking matches the requested
// id. Absence is a normal, reportable outcome, not a fault.
var ErrNotFound = errors.New("booking not found")

// ValidationError reports a bad or missing field in a booking request. It is
// raised before any state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking request: %s %s", e.Field, e.Reason)
}

// DispatchError reports that one or both notification emails could not be
// delivered. The booking is already persisted when this is raised; callers
// must treat it as "created, notification failed" rather than "not created".
type DispatchError struct {
	BookingID string
	Err       error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("notification dispatch failed for booking %s: %v", e.BookingID, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
