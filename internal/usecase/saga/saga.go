// Package saga runs multi-write operations either inside one storage
// transaction or, when that is not possible, as ordered steps with
// compensations.
package saga

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Step is one write of a plan. A nil Compensate marks the step irreversible:
// a later failure leaves its effect in place.
type Step struct {
	Name       string
	Do         func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports which step of a sequential run failed and how the
// preceding steps were undone. It unwraps to the step's own error.
type StepError struct {
	Saga        string
	Step        string
	Err         error
	Compensated []string
	// CompensationErrs is keyed by step name; a non-empty map means the
	// store may be left partially written.
	CompensationErrs map[string]error
}

func (e *StepError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: step %q failed: %v", e.Saga, e.Step, e.Err)
	if len(e.CompensationErrs) > 0 {
		fmt.Fprintf(&b, " (%d compensation(s) failed)", len(e.CompensationErrs))
	}
	return b.String()
}

func (e *StepError) Unwrap() error { return e.Err }

// Clean reports whether every executed step was undone.
func (e *StepError) Clean() bool { return len(e.CompensationErrs) == 0 }

// Run executes steps in order. When step k fails, compensations of steps
// k-1..1 run in reverse order on a context that survives cancellation of ctx.
func Run(ctx context.Context, log zerolog.Logger, name string, steps []Step) error {
	for i, s := range steps {
		err := s.Do(ctx)
		if err == nil {
			continue
		}

		se := &StepError{Saga: name, Step: s.Name, Err: err}
		undo := context.WithoutCancel(ctx)
		for j := i - 1; j >= 0; j-- {
			prev := steps[j]
			if prev.Compensate == nil {
				continue
			}
			if cerr := prev.Compensate(undo); cerr != nil {
				if se.CompensationErrs == nil {
					se.CompensationErrs = make(map[string]error)
				}
				se.CompensationErrs[prev.Name] = cerr
				log.Error().
					Err(cerr).
					Str("saga", name).
					Str("step", prev.Name).
					Str("failed_step", s.Name).
					Msg("compensation failed")
				continue
			}
			se.Compensated = append(se.Compensated, prev.Name)
		}
		return se
	}
	return nil
}

// AsStepError is a convenience for errors.As.
func AsStepError(err error) (*StepError, bool) {
	var se *StepError
	ok := errors.As(err, &se)
	return se, ok
}
