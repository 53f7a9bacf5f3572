package types

import (
	"errors"
	"fmt"
)

// Failure kinds. Every per-spec error wraps exactly one of them.
var (
	ErrInvalidSpec    = errors.New("invalid spec")
	ErrWriteFailure   = errors.New("write failure")
	ErrToolingFailure = errors.New("tooling failure")
	ErrOutOfDate      = errors.New("out of date")
	ErrCancelled      = errors.New("cancelled")
)

// SpecError ties a failure kind and its cause to the enumeration that failed
type SpecError struct {
	Spec string
	Kind error
	Err  error
}

// NewSpecError wraps err as a failure of kind for the named spec
func NewSpecError(spec string, kind, err error) *SpecError {
	return &SpecError{Spec: spec, Kind: kind, Err: err}
}

func (e *SpecError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Spec, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Spec, e.Kind, e.Err)
}

func (e *SpecError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the failure kind wrapped in err, or nil when err carries none.
func KindOf(err error) error {
	for _, k := range []error{ErrInvalidSpec, ErrWriteFailure, ErrToolingFailure, ErrOutOfDate, ErrCancelled} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
