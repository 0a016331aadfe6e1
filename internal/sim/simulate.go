package sim

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/trace"
)

// Simulate runs the family registered under id on in and returns the full
// snapshot sequence. Input errors surface before any snapshot work; a run
// that breaches its snapshot ceiling fails with trace.ErrOverrun instead of
// hanging, and callers never see a partial sequence.
func (r *Registry) Simulate(id string, in trace.Input) (trace.Sequence, error) {
	alg, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := alg.Validate(in); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	rec := trace.NewRecorder(alg.MaxSteps(in))
	if err := run(alg, in, rec); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	seq := rec.Sequence()
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return seq, nil
}

// run executes one family, converting a recorder ceiling breach into an
// error. Any other panic is a plain bug and keeps propagating.
func run(alg trace.Algorithm, in trace.Input, rec *trace.Recorder) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if over, ok := p.(trace.Overrun); ok {
				err = over
				return
			}
			panic(p)
		}
	}()
	alg.Run(in, rec)
	return nil
}

// CreatePlayback simulates and binds a fresh player to the result.
func (r *Registry) CreatePlayback(id string, in trace.Input) (*player.Player, error) {
	seq, err := r.Simulate(id, in)
	if err != nil {
		return nil, err
	}
	return player.New(seq)
}
