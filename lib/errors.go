package lib

import (
	"errors"
	"fmt"
)

// ValidationError is returned when proposed transaction fields break a rule.
// Nothing is written when it occurs.
type ValidationError struct {
	// Field is the column the problem was found in, e.g. "Amount".
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError is returned when an edit or delete targets an id that is not
// in the store.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %v not found", e.ID)
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError

	return errors.As(err, &v)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError

	return errors.As(err, &n)
}
