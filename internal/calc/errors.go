package calc

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCalculation = errors.New("calc: unknown calculation")
	ErrMissingParam       = errors.New("calc: missing parameter")
	ErrUnknownParam       = errors.New("calc: unknown parameter")
	ErrArgCount           = errors.New("calc: wrong number of arguments")
)

// JobError wraps a batch failure with the index of the failing job.
type JobError struct {
	Index       int
	Calculation string
	Wrapped     error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %d (%s): %v", e.Index, e.Calculation, e.Wrapped)
}

func (e *JobError) Unwrap() error {
	return e.Wrapped
}
