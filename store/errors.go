package store

import (
	"errors"
	"fmt"

	"github.com/DanielJacob1998/capstone/models"
)

// ErrNotFound is returned by lookups, updates and deletes that target
// an id the store does not hold.
var ErrNotFound = errors.New("event not found")

// ValidationError reports a structurally invalid candidate event or a
// malformed query parameter. Nothing is mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError is returned when a candidate exactly matches an
// existing event on (title, start_date, time, location, created_by).
// It carries the matching event and can never be bypassed.
type DuplicateError struct {
	Event models.Event
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate of event %s", e.Event.ID)
}

// OverlapError is returned when a candidate collides in time with a
// scope-comparable event created by another user. It carries the
// conflicting event and is bypassed by force.
type OverlapError struct {
	Event models.Event
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlaps event %s", e.Event.ID)
}
