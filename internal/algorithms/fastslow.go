package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// FastSlow runs Floyd's cycle detection over a linked list encoded as a
// next-index array: values[i] is the index of the node after i, -1 is the
// end of the list. Both pointers start at index 0.
type FastSlow struct{}

func NewFastSlow() *FastSlow {
	return &FastSlow{}
}

func (f *FastSlow) ID() string {
	return "fast-slow"
}

func (f *FastSlow) Contract() trace.Contract {
	return trace.Contract{
		Description: "detect a cycle with one pointer moving twice as fast",
		Input:       "values (next-index links, -1 ends the list)",
		Primary:     "the next-index links (static)",
		Cursors:     []string{"slow", "fast"},
	}
}

func (f *FastSlow) Validate(in trace.Input) error {
	if err := checkValues(in, 1); err != nil {
		return err
	}
	for i, v := range in.Values {
		if v < -1 || v >= len(in.Values) {
			return invalid("link %d at index %d outside [-1,%d)", v, i, len(in.Values))
		}
	}
	return nil
}

func (f *FastSlow) MaxSteps(in trace.Input) int {
	return 2*len(in.Values) + 8
}

func (f *FastSlow) Run(in trace.Input, rec *trace.Recorder) {
	next := in.Clone().Values
	slow, fast := 0, 0

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: "slow and fast pointers start at index 0",
		Primary: next,
		Cursors: map[string]int{"slow": slow, "fast": fast},
	})

	for {
		if next[fast] == -1 || next[next[fast]] == -1 {
			rec.Finish(trace.Snapshot{
				Kind:    trace.KindDone,
				Message: "fast pointer reached the end of the list, no cycle",
				Primary: next,
				Cursors: map[string]int{"slow": slow, "fast": fast},
			})
			return
		}
		slow = next[slow]
		fast = next[next[fast]]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindMove,
			Message: fmt.Sprintf("slow to index %d, fast to index %d", slow, fast),
			Primary: next,
			Cursors: map[string]int{"slow": slow, "fast": fast},
		})
		if slow == fast {
			rec.Finish(trace.Snapshot{
				Kind:    trace.KindDone,
				Message: fmt.Sprintf("pointers meet at index %d: the list has a cycle", slow),
				Primary: next,
				Cursors: map[string]int{"slow": slow, "fast": fast},
			})
			return
		}
	}
}
