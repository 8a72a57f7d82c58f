package solar

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid monthly consumption")

// InvalidInputError reports a consumption value that cannot be sized.
type InvalidInputError struct {
	Input  string
	Reason string
}

func newInvalidInputError(input, reason string) *InvalidInputError {
	return &InvalidInputError{Input: input, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidInput, e.Input, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
