package filter

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrMissingValue  = errors.New("missing value")
	ErrInvalidValue  = errors.New("invalid value")
)

// UnknownFilterError names an alias found in neither the built-in nor the
// custom catalog.
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter %q", e.Name)
}

func (e *UnknownFilterError) Unwrap() error { return ErrUnknownFilter }

// ValueError reports a clause value the filter could not interpret.
type ValueError struct {
	Filter   string
	Expected string
	Err      error
}

func (e *ValueError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("filter %q: %v", e.Filter, e.Err)
	}
	return fmt.Sprintf("filter %q expects %s: %v", e.Filter, e.Expected, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
