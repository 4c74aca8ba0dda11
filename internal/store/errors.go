package store

import (
	"encoding/json"
	"fmt"
)

// NotFoundError reports that no row matched the requested id(s) in the
// expected soft-delete state.
type NotFoundError struct {
	Entity   string
	Criteria map[string]any
}

func (e *NotFoundError) Error() string {
	if len(e.Criteria) == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	criteria, err := json.Marshal(e.Criteria)
	if err != nil {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s with %s not found", e.Entity, criteria)
}

func newNotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, Criteria: map[string]any{"id": id}}
}

// InvalidArgumentError reports input rejected before any statement ran:
// a malformed id or an empty bulk payload.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func NewInvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}
