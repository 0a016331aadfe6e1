package trace

import (
	"errors"
	"fmt"
)

// Domain errors for simulation and playback operations.
var (
	// ErrInvalidInput indicates an input that violates a family's preconditions.
	ErrInvalidInput = errors.New("trace: invalid input for algorithm")

	// ErrUnknownAlgorithm indicates an id with no registered family.
	ErrUnknownAlgorithm = errors.New("trace: unknown algorithm")

	// ErrOverrun indicates a run exceeded its snapshot ceiling.
	ErrOverrun = errors.New("trace: snapshot ceiling exceeded")

	// ErrEmptySequence indicates a sequence with no snapshots.
	ErrEmptySequence = errors.New("trace: empty snapshot sequence")
)

// Overrun is the panic payload raised by a Recorder whose ceiling is
// breached. The simulator recovers it and surfaces ErrOverrun, so a run
// that loops without terminating fails loudly instead of hanging.
type Overrun struct {
	Limit int
}

func (o Overrun) Error() string {
	return fmt.Sprintf("trace: snapshot ceiling %d exceeded", o.Limit)
}

func (o Overrun) Unwrap() error {
	return ErrOverrun
}
